// Package log provides structured protocol logging.
//
// This package defines the Logger interface and Event types for capturing
// protocol-level events at several layers (network frames, decoded commands,
// dispatch and settings updates). It is separate from operational logging
// (slog): protocol capture provides a complete machine-readable event trace
// for debugging and replay analysis.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/dronecmd/session.dlog")
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
//   - Network: frame headers and raw bytes (FrameEvent)
//   - Wire: decoded commands (CommandEvent)
//   - Settings: aggregate updates (SettingEvent)
//   - Session: lifecycle changes (StateChangeEvent)
//
// Errors at any layer use ErrorEventData.
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .dlog extension.
// The "dronecmd log" command prints and filters them.
package log
