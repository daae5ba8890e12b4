// Package sheetstore persists the worksheet record as a single JSON blob in
// a string-keyed store.
//
// The Backend interface is the raw get/set slot; OpenSQLite provides the
// production implementation backed by a one-table SQLite database guarded by
// a cross-process file lock. The Adapter layers serialization and a
// structural shape check on top and converts every read or write failure
// into "use defaults" or "log and continue" — no storage error ever reaches
// the caller.
package sheetstore
