package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// objectMetadataSuffix names the sidecar file holding an object's HTTP metadata
const objectMetadataSuffix = ".meta.json"

// errObjectIsDirectory marks a key that resolves to a directory. Directories
// are not objects, so callers report them as not found.
var errObjectIsDirectory = errors.New("object path is a directory")

// ObjectMetadata is the optional sidecar stored next to an object on disk
type ObjectMetadata struct {
	ContentType        string `json:"content_type,omitempty"`
	ContentDisposition string `json:"content_disposition,omitempty"`
	ContentEncoding    string `json:"content_encoding,omitempty"`
	ContentLanguage    string `json:"content_language,omitempty"`
	ETag               string `json:"etag,omitempty"`
}

// FilesystemObjectStore implements ObjectStore on a local directory. Object
// keys map to paths below basePath.
type FilesystemObjectStore struct {
	name     string
	basePath string
	logger   *zap.Logger
}

// NewFilesystemObjectStore creates a store rooted at basePath, which must exist
func NewFilesystemObjectStore(name, basePath string, logger *zap.Logger) (*FilesystemObjectStore, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open object directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("object directory %s is not a directory", basePath)
	}

	return &FilesystemObjectStore{
		name:     name,
		basePath: basePath,
		logger:   logger,
	}, nil
}

// Name returns the store name
func (s *FilesystemObjectStore) Name() string {
	return s.name
}

// Get reads the object from disk
func (s *FilesystemObjectStore) Get(ctx context.Context, key string, opts GetOptions) (ReadResult, error) {
	path, err := s.objectPath(key)
	if err != nil {
		return ReadResult{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(), nil
		}
		return ReadResult{}, fmt.Errorf("failed to open object %s: %w", key, err)
	}

	info, err := s.objectInfo(file, path)
	if err != nil {
		_ = file.Close()
		if errors.Is(err, errObjectIsDirectory) {
			return notFound(), nil
		}
		return ReadResult{}, err
	}

	if opts.Conditions.NotModified(info.ETag) {
		_ = file.Close()
		s.logger.Debug("object preconditions not met",
			zap.String("store", s.name),
			zap.String("key", key),
			zap.String("etag", info.ETag))
		return notModified(info), nil
	}

	byteRange, err := opts.Range.Resolve(info.Size)
	if err != nil {
		_ = file.Close()
		return ReadResult{}, err
	}

	object := &Object{Info: info, Body: file}
	if opts.Range.IsPartial() {
		if _, err := file.Seek(int64(byteRange.Start), io.SeekStart); err != nil {
			_ = file.Close()
			return ReadResult{}, fmt.Errorf("failed to seek object %s: %w", key, err)
		}
		object.Body = &limitedReadCloser{
			Reader: io.LimitReader(file, int64(byteRange.Length())),
			Closer: file,
		}
		object.Range = &byteRange
	}

	return found(object), nil
}

// Head reads the object's metadata from disk
func (s *FilesystemObjectStore) Head(ctx context.Context, key string) (ReadResult, error) {
	path, err := s.objectPath(key)
	if err != nil {
		return ReadResult{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(), nil
		}
		return ReadResult{}, fmt.Errorf("failed to open object %s: %w", key, err)
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := s.objectInfo(file, path)
	if err != nil {
		if errors.Is(err, errObjectIsDirectory) {
			return notFound(), nil
		}
		return ReadResult{}, err
	}

	return found(&Object{Info: info}), nil
}

// Close is a no-op for filesystem storage
func (s *FilesystemObjectStore) Close() error {
	return nil
}

// objectPath maps a key to a path below basePath, rejecting traversal
func (s *FilesystemObjectStore) objectPath(key string) (string, error) {
	if key == "" || strings.HasSuffix(key, objectMetadataSuffix) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." || strings.Contains(segment, `\`) {
			return "", fmt.Errorf("invalid object key %q", key)
		}
	}
	return filepath.Join(s.basePath, filepath.FromSlash(key)), nil
}

func (s *FilesystemObjectStore) objectInfo(file *os.File, path string) (ObjectInfo, error) {
	stat, err := file.Stat()
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to stat object: %w", err)
	}
	if stat.IsDir() {
		return ObjectInfo{}, fmt.Errorf("%w: %s", errObjectIsDirectory, path)
	}

	info := ObjectInfo{
		Size:         uint64(stat.Size()),
		ETag:         QuoteETag(fmt.Sprintf("%x-%x", stat.Size(), stat.ModTime().UnixNano())),
		LastModified: stat.ModTime().UTC(),
	}

	metadata, err := readObjectMetadata(path + objectMetadataSuffix)
	if err != nil {
		return ObjectInfo{}, err
	}
	if metadata != nil {
		info.ContentType = metadata.ContentType
		info.ContentDisposition = metadata.ContentDisposition
		info.ContentEncoding = metadata.ContentEncoding
		info.ContentLanguage = metadata.ContentLanguage
		if metadata.ETag != "" {
			info.ETag = QuoteETag(metadata.ETag)
		}
	}

	return info, nil
}

func readObjectMetadata(path string) (*ObjectMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read object metadata: %w", err)
	}

	var metadata ObjectMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse object metadata %s: %w", path, err)
	}
	return &metadata, nil
}

// WriteObjectMetadata stores the sidecar for an object key below basePath
func WriteObjectMetadata(basePath, key string, metadata ObjectMetadata) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal object metadata: %w", err)
	}

	path := filepath.Join(basePath, filepath.FromSlash(key)) + objectMetadataSuffix
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

type limitedReadCloser struct {
	io.Reader
	io.Closer
}
