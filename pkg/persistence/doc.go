// Package persistence stores settings snapshots across process restarts.
//
// Snapshots are written as CBOR with integer keys. Argument values are kept
// as tagged records and rebuilt against the descriptor table on load, so
// enum values the table does not know about survive a round trip as
// UNKNOWN with their raw integer.
package persistence
