// Package netframe implements the network frame that carries command
// payloads between controller and device.
//
// Every frame starts with a 7 byte header:
//
//	type u8 | buffer id u8 | sequence u8 | size u32 LE
//
// where size counts the header itself. Frames of TypeDataWithAck must be
// acknowledged with a TypeAck frame on buffer id+128 whose one byte payload
// is the acknowledged sequence number. Several frames may be packed into a
// single datagram; ParseAll splits them.
package netframe
