// Package directory implements the recipient address book: individual
// contacts plus named, mutable groups referencing them by id.
//
// The service layer owns all validation (email format, case-insensitive
// uniqueness) and the delete cascade that scrubs a removed recipient out of
// every group. It depends on the Repository interface defined in this
// package; the storage-backed implementation lives in repository/kv.
package directory
