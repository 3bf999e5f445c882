// Package votes keeps the client-local record of which feedback items this
// device has voted for.
//
// The Ledger enforces at-most-one-vote-per-item before any network call and
// persists its set synchronously through a Store. FileStore is the default
// Store for Go hosts, writing YAML atomically into the OS config directory;
// mobile or embedded hosts can supply their own Store backed by the
// platform's preference system.
package votes
