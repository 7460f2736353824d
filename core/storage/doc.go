// Package storage provides a façade over an S3-compatible object storage service.
//
// It wraps the MinIO Go client behind the Client interface and exposes a small, normalized
// operation set bound to one bucket through Adapter. The adapter validates its configuration
// once, creates the client lazily on first use and translates SDK results into simple shapes.
//
// # Client Interface
//
// The Client interface lists the SDK calls the adapter consumes. *minio.Client satisfies it
// directly; tests substitute the mock in core/storage/mocks through Adapter.SetClient.
//
// # Operations
//
//   - Exists: Reports whether an object exists.
//   - Upload: Stores a local file and returns its request URL.
//   - SignURL: Returns a time-limited GET URL (TimeoutSeconds).
//   - Delete: Removes an object.
//   - CreateDir: Writes a "name/" directory marker.
//   - List / ListRaw: Lists keys with prefix, delimiter grouping and marker paging.
//   - Read / ReadStream: Fetches an object through a signed URL.
//
// # Errors
//
// Configuration problems are *ConfigError, client construction problems *ClientError and
// failures reported by the service *StorageError. Read and ReadStream return an error wrapping
// ErrNotOpenable when the signed URL cannot be opened.
//
// # Usage
//
//	adapter, err := storage.New(cfg, logger)
//	exists, err := adapter.Exists(ctx, "images/logo.png")
//	result, err := adapter.List(ctx, storage.ListOptions{Prefix: "images/", Delimiter: "/"})
package storage
