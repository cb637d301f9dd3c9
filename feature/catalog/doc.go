// Package catalog hosts the catalog reconciliation feature: matching internal
// variants against the distributor feed index and applying price, cost and
// inventory mutations.
//
// The feature is composed from focused subpackages:
//
//   - match: the cascading multi-strategy variant matcher
//   - pricing: the MAP/Jobber/Retail cascade and inventory resolution
//   - walk: cursor-paginated catalog streaming
//   - apply: per-variant mutation sub-steps with error classification
//   - sync: the run orchestrator, cadence and run store
//   - models: the persisted SyncRun record and progress projection
//
// The Service in this package owns the long-lived state (feed index cache,
// location cache, per-shop run lock) and fronts both the HTTP handler and the
// CLI commands.
package catalog
