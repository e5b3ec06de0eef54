// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so domain tables can live in an S3-compatible
// bucket instead of on the local disk. Both AWS S3 and self-hosted MinIO work.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider, making it easy to
// mock storage interactions in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves a table as a stream.
//   - PutObject: Replaces a table in a single request.
//   - StatObject: Checks that a table exists.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "domains")
package storage
