// Package dispatch routes decoded commands to application listeners.
//
// Each command identity has at most one listener; registering again
// replaces the previous one. Commands without a listener are dropped
// silently. Notifications bound to a settings field are additionally handed
// to the settings sink, before the listener runs.
//
// Listeners run synchronously on the caller's goroutine. A listener that
// returns an error or panics is isolated at the dispatch boundary: the
// failure is logged and reported as ResultListenerFailed, and the next
// Dispatch call proceeds normally.
package dispatch
