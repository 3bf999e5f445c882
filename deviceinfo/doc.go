// Package deviceinfo captures point-in-time device and environment snapshots
// for feedback and bug submissions.
//
// A Snapshot is built on demand from a Provider, never fails, and never
// changes after construction. Extended readings (free memory, battery level,
// network type) are gated behind an explicit flag and only requested for bug
// reports.
package deviceinfo
