// Package campaign implements newsletter campaign lifecycle: sending
// (snapshotting recipients and generating tracking links), idempotent
// open/click marking, and the derived engagement metrics.
//
// A campaign's core fields are immutable once sent; only the opens and
// clicks logs grow. The service depends on the Repository interface defined
// in this package plus a read-only view of the recipient directory.
package campaign
