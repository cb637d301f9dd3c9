// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface so the feed's
// fallback source can be mocked in tests (see core/storage/mocks). The same
// bucket that receives distributor feed exports is read back by
// feed.StorageSource when the remote export is unreachable.
//
// # Operations
//
//   - BucketExists: Verifies access to the feed bucket.
//   - PutObject: Uploads a feed snapshot.
//   - GetObject: Retrieves a feed CSV as a stream.
//   - ListObjects: Lists feed exports (supports prefix/recursive).
package storage
