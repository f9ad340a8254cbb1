// Package wire implements the binary command codec.
//
// A command payload is the command identity followed by its arguments:
//
//	feature u8 | class u8 (multi-class features only) | command u16 LE | args...
//
// Arguments are concatenated in declared order, little-endian, with no
// padding and no length prefixes. Enums travel at their declared integer
// width (i32 unless the schema says otherwise), bitfields as raw unsigned
// integers and strings as UTF-8 followed by a single NUL byte. The payload
// length is supplied by the transport.
//
// Decoding is all-or-nothing: on ErrUnknownCommand or ErrTruncatedFrame no
// Command is returned. Extra bytes after the last known argument are
// tolerated for forward compatibility: Decode returns the Command together
// with a *TrailingBytesError, which IsFatal reports as non-fatal.
//
// Enum integers the schema does not declare decode to the enum's UNKNOWN
// sentinel and never fail. Encoding the sentinel, or any undeclared value,
// fails with ErrInvalidEnumForEncode.
package wire
