// Package feed loads the distributor feed and turns it into a searchable
// catalog index.
//
// The feed arrives as loosely-structured rows whose column names vary between
// feed versions and vendors. The normalizer resolves each canonical field
// through an ordered alias table and never fails on a malformed row; a bad
// field simply comes out empty or zero.
//
// # Index
//
// BuildIndex registers every identifier variant of a record (raw, leading
// zeros stripped, zero-padded to 12/13/14 digits) plus its part number. The
// first record to claim a key wins; later duplicates are dropped silently so
// the index is stable for a given feed ordering.
//
// # Cache
//
// The index is expensive to build (tens of thousands of rows), so Cache keeps
// the most recent build behind a TTL with singleflight stampede protection.
// Invalidate clears it unconditionally; every sync run invalidates at start to
// avoid working from a stale feed snapshot.
//
// # Sources
//
// A Source yields raw rows. HTTPSource fetches the exported feed CSV from a
// remote URL, StorageSource reads the same CSV from object storage, and
// ChainSource tries each in order. If no source yields at least one row the
// load fails with ErrFeedUnavailable.
package feed
