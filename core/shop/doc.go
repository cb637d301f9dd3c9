// Package shop defines the contract against the merchant's catalog platform.
//
// The engine never talks to a concrete API directly; everything goes through
// the Client interface: cursor-paginated product reads, per-variant mutation
// operations, and location resolution. RESTClient is the default transport;
// the mocks subpackage provides a testify mock for tests.
//
// The primary location id is resolved once and cached per process behind a
// TTL (LocationCache); sync runs invalidate it at start so a relocated
// inventory location cannot leak into a fresh run.
package shop
