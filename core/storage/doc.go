// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the snapshot
// archive needs. Both AWS S3 and self-hosted MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: prepare the snapshot bucket.
//   - PutObject / GetObject: write and read one snapshot. GetObject reports a
//     missing object as faults.ErrNotFound.
//   - ListObjects: list the snapshots of a resource (prefix, recursive).
//   - RemoveObjects: prune old snapshots in one batch.
//
// An endpoint may be given as a URL; its scheme then decides TLS regardless of
// use_ssl.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
