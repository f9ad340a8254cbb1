// Package settings accumulates "changed" notifications into a per-session
// view of device settings.
//
// A field exists only once its notification has arrived: lookups return
// (Field, false) before that, never a zero value posing as device state.
// Each notification overwrites the field entirely (last writer wins) and
// fields are never removed, except by Reset when the owning session
// reconnects.
//
// The session delivery goroutine is the only writer. Readers on other
// goroutines get copies, either per field or as a Snapshot.
package settings
