// Package objects exposes the storage adapter over HTTP.
//
// The Service forwards to core/storage.Adapter and records bucket mutations (upload, delete,
// mkdir) in the object_events audit table when a database is configured.
//
// # HTTP Endpoints
//
//   - GET /objects : Lists keys and prefixes (prefix, delimiter, marker, max_keys, raw).
//   - DELETE /objects?path= : Deletes an object.
//   - GET /objects/exists?path= : Existence check.
//   - GET /objects/sign?path= : Signed URL.
//   - GET /objects/url?path= : Signed URL for private buckets, plain URL otherwise.
//   - GET /objects/content?path= : Object contents (supports ?stream=true).
//   - GET /objects/events : Recent audit events.
//   - POST /objects/upload : Multipart upload (path, file).
//   - POST /objects/dirs : Creates a directory marker.
//
// Objects that cannot be opened answer 404; other storage failures answer 500.
package objects
