package server

import (
	"context"
	"io"
	"time"
)

// ReadStatus is the outcome of a read against a single object store
type ReadStatus int

const (
	// ReadFound means the object exists; the body is present unless the read was metadata only
	ReadFound ReadStatus = iota

	// ReadNotModified means the preconditions suppressed the body
	ReadNotModified

	// ReadNotFound means the object is absent from this store
	ReadNotFound
)

// String returns the string representation of the ReadStatus
func (s ReadStatus) String() string {
	switch s {
	case ReadFound:
		return "found"
	case ReadNotModified:
		return "not_modified"
	case ReadNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// ObjectInfo is the metadata of a stored object. Cache-Control is not read
// from stores; responses always carry the delivery policy's value.
type ObjectInfo struct {
	Size               uint64
	ETag               string
	LastModified       time.Time
	ContentType        string
	ContentDisposition string
	ContentEncoding    string
	ContentLanguage    string
}

// Object is an object read from a store. Body is nil for metadata-only
// results: HEAD requests and reads whose preconditions failed.
type Object struct {
	Info  ObjectInfo
	Range *ByteRange
	Body  io.ReadCloser
}

// HasBody reports whether the object carries content
func (o *Object) HasBody() bool {
	return o != nil && o.Body != nil
}

// ReadResult is what a store returns for a read. Object is nil when Status is ReadNotFound.
type ReadResult struct {
	Status ReadStatus
	Object *Object
}

// GetOptions controls a GET read
type GetOptions struct {
	Range      RangeRequest
	Conditions Conditions
}

//go:generate counterfeiter -o mocks/fake_object_store.go . ObjectStore

// ObjectStore is a content-addressed blob store. Absence is reported through
// ReadNotFound; every other failure is returned as an error.
type ObjectStore interface {
	// Name identifies the store in logs and metrics
	Name() string

	// Get reads an object, honouring the range and preconditions
	Get(ctx context.Context, key string, opts GetOptions) (ReadResult, error)

	// Head reads only the object's metadata, unconditionally
	Head(ctx context.Context, key string) (ReadResult, error)

	// Close releases resources held by the store
	Close() error
}

// StoreChain is the ordered list of stores consulted on a miss
type StoreChain []ObjectStore

// NewStoreChain builds a chain from the primary store and an optional secondary
func NewStoreChain(primary ObjectStore, secondary ObjectStore) StoreChain {
	chain := StoreChain{primary}
	if secondary != nil {
		chain = append(chain, secondary)
	}
	return chain
}

// Close closes every store in the chain and returns the first error
func (c StoreChain) Close() error {
	var firstErr error
	for _, store := range c {
		if err := store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func notFound() ReadResult {
	return ReadResult{Status: ReadNotFound}
}

func notModified(info ObjectInfo) ReadResult {
	return ReadResult{Status: ReadNotModified, Object: &Object{Info: info}}
}

func found(object *Object) ReadResult {
	return ReadResult{Status: ReadFound, Object: object}
}
