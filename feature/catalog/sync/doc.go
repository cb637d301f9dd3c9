// Package sync orchestrates one end-to-end reconciliation run.
//
// A run moves through Running to either Completed or Failed. Only
// catastrophic failures end in Failed: the feed yielding no rows, or the
// catalog stream breaking structurally. Per-variant mutation errors are
// classified, counted and sampled into the run record, and the run still
// completes.
//
// # Run algorithm
//
//  1. Invalidate the feed index and location caches.
//  2. Build or fetch the feed index; feed unavailability aborts immediately.
//  3. Count catalog totals with a count-only walk to size progress.
//  4. Persist the run record in Running state.
//  5. Stream products; per variant: match, resolve, apply; per product: set
//     visibility (active iff any variant matched this run).
//  6. Persist progress at a throttled cadence (see Cadence).
//  7. Finalize counters, success rate and Completed status.
//
// Progress persistence is best effort. A failed write is logged and the run
// keeps going; the run record is telemetry, not a ledger.
package sync
