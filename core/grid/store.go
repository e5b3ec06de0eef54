package grid

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"domain-checker/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrNotFound is returned when the table does not exist.
var ErrNotFound = errors.New("table not found")

// ObjectScheme prefixes locations kept in object storage.
const ObjectScheme = "s3://"

// Store reads and writes whole table files.
type Store interface {
	Load(ctx context.Context, location string) ([]byte, error)
	// Save replaces the table in one step; readers never see a partial file.
	Save(ctx context.Context, location string, data []byte) error
}

// FileStore keeps tables on the local file system.
type FileStore struct{}

// Load implements Store.
func (FileStore) Load(ctx context.Context, location string) ([]byte, error) {
	info, err := os.Stat(location)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, location)
	}
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", location)
	}
	return os.ReadFile(location)
}

// Save implements Store by writing a temporary file next to the target and
// renaming it over the target.
func (FileStore) Save(ctx context.Context, location string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(location); err == nil {
		mode = info.Mode().Perm()
	}

	dir, base := filepath.Split(location)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, location); err != nil {
		return fmt.Errorf("failed to replace %s: %w", location, err)
	}
	return nil
}

// ObjectStore keeps tables in a bucket. Locations look like s3://bucket/key.
type ObjectStore struct {
	client storage.Client
}

// NewObjectStore creates an object store over client.
func NewObjectStore(client storage.Client) *ObjectStore {
	return &ObjectStore{client: client}
}

// Ready reports whether bucket exists and is reachable with the client's
// credentials.
func (s *ObjectStore) Ready(ctx context.Context, bucket string) error {
	ok, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to reach bucket %s: %w", bucket, err)
	}
	if !ok {
		return fmt.Errorf("%w: bucket %s", ErrNotFound, bucket)
	}
	return nil
}

// ParseObjectLocation splits s3://bucket/key.
func ParseObjectLocation(location string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(location, ObjectScheme)
	if !ok {
		return "", "", fmt.Errorf("not an object location: %s", location)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("object location must be s3://bucket/key: %s", location)
	}
	return bucket, key, nil
}

// Load implements Store.
func (s *ObjectStore) Load(ctx context.Context, location string) ([]byte, error) {
	bucket, key, err := ParseObjectLocation(location)
	if err != nil {
		return nil, err
	}

	// Stat first: GetObject is lazy and only reports a missing key on read.
	if _, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, location)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", location, err)
	}

	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, location)
		}
		return nil, fmt.Errorf("failed to get %s: %w", location, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, location)
		}
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return data, nil
}

// Save implements Store.
func (s *ObjectStore) Save(ctx context.Context, location string, data []byte) error {
	bucket, key, err := ParseObjectLocation(location)
	if err != nil {
		return err
	}

	contentType := "application/octet-stream"
	if f, err := FormatOf(key); err == nil {
		contentType = f.ContentType()
	}

	_, err = s.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", location, err)
	}
	return nil
}

// Router dispatches s3:// locations to an object store and everything else to
// the local file system.
type Router struct {
	Files   Store
	Objects Store
}

// NewRouter creates a router. objects may be nil when no object storage is
// configured.
func NewRouter(objects Store) *Router {
	return &Router{Files: FileStore{}, Objects: objects}
}

func (r *Router) pick(location string) (Store, error) {
	if strings.HasPrefix(location, ObjectScheme) {
		if r.Objects == nil {
			return nil, fmt.Errorf("object storage is not configured for %s", location)
		}
		return r.Objects, nil
	}
	return r.Files, nil
}

// Load implements Store.
func (r *Router) Load(ctx context.Context, location string) ([]byte, error) {
	s, err := r.pick(location)
	if err != nil {
		return nil, err
	}
	return s.Load(ctx, location)
}

// Save implements Store.
func (r *Router) Save(ctx context.Context, location string, data []byte) error {
	s, err := r.pick(location)
	if err != nil {
		return err
	}
	return s.Save(ctx, location, data)
}
