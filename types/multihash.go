package types

import (
	"encoding/base64"
	"fmt"

	multihash "github.com/multiformats/go-multihash"
)

// FileMultihash is a hex encoded, self-describing content hash. It is the
// suffix of the object key in the blob store.
type FileMultihash string

// String returns the string representation of the FileMultihash
func (m FileMultihash) String() string {
	return string(m)
}

// FileDigest is a decoded multihash
type FileDigest struct {
	// Algorithm is the multicodec name of the hash function, e.g. sha2-256
	Algorithm string

	// Digest is the raw hash output
	Digest []byte
}

// reprDigestNames maps multicodec names onto the names registered for the
// HTTP digest fields
var reprDigestNames = map[uint64]string{
	multihash.SHA2_256: "sha-256",
	multihash.SHA2_512: "sha-512",
}

func (m FileMultihash) decode() (*multihash.DecodedMultihash, error) {
	raw, err := multihash.FromHexString(string(m))
	if err != nil {
		return nil, fmt.Errorf("failed to parse multihash %q: %w", string(m), err)
	}

	decoded, err := multihash.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode multihash %q: %w", string(m), err)
	}

	if _, ok := reprDigestNames[decoded.Code]; !ok {
		return nil, fmt.Errorf("unsupported multihash algorithm %q (code 0x%x)", decoded.Name, decoded.Code)
	}

	return decoded, nil
}

// Decode parses the multihash into its algorithm and digest. Only hash
// functions that can be expressed as a Repr-Digest are accepted.
func (m FileMultihash) Decode() (FileDigest, error) {
	decoded, err := m.decode()
	if err != nil {
		return FileDigest{}, err
	}

	return FileDigest{
		Algorithm: decoded.Name,
		Digest:    decoded.Digest,
	}, nil
}

// ReprDigest renders the multihash as a Repr-Digest header value,
// `sha-256=:<base64>:`.
func (m FileMultihash) ReprDigest() (string, error) {
	decoded, err := m.decode()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s=:%s:", reprDigestNames[decoded.Code], base64.StdEncoding.EncodeToString(decoded.Digest)), nil
}
