// Package enum holds the protocol's enumerations and resolves wire integers
// to symbolic variants.
//
// Resolution never fails. Every enum carries an UNKNOWN sentinel with value
// math.MinInt32 that is returned for integers the enum does not declare, so
// a peer running newer firmware can send values this build has never seen.
// The sentinel itself must never be encoded.
//
// Enums marked as bitfields describe bit positions: the variant value is the
// bit index inside the raw mask carried on the wire.
package enum
