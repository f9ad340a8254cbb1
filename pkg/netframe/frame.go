package netframe

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dronecmd/dronecmd-go/pkg/model"
)

// Framing constants.
const (
	// HeaderSize is the size of the frame header in bytes.
	HeaderSize = 7

	// DefaultMaxFrameSize is the default maximum frame size, header included.
	DefaultMaxFrameSize = 65536

	// AckOffset is added to a buffer id to obtain its acknowledgement buffer.
	AckOffset = 128
)

// Buffer ids used by the controller (outbound) and the device (inbound).
const (
	BufferControllerNonAck uint8 = 10
	BufferControllerAck    uint8 = 11
	BufferControllerHigh   uint8 = 12
	BufferDeviceAck        uint8 = 126
	BufferDeviceNonAck     uint8 = 127
)

// Framing errors.
var (
	// ErrFrameTruncated indicates fewer bytes than the header announces.
	ErrFrameTruncated = errors.New("frame truncated")

	// ErrMessageTooLarge indicates the frame exceeds the maximum size.
	ErrMessageTooLarge = errors.New("message too large")

	// ErrInvalidFrame indicates a malformed header.
	ErrInvalidFrame = errors.New("invalid frame")
)

// Type is the network frame type.
type Type uint8

const (
	// TypeAck acknowledges a TypeDataWithAck frame.
	TypeAck Type = 1
	// TypeData carries a payload that is not acknowledged.
	TypeData Type = 2
	// TypeLowLatency carries latency sensitive data (video).
	TypeLowLatency Type = 3
	// TypeDataWithAck carries a payload the receiver must acknowledge.
	TypeDataWithAck Type = 4
)

// String returns the frame type name.
func (t Type) String() string {
	switch t {
	case TypeAck:
		return "ACK"
	case TypeData:
		return "DATA"
	case TypeLowLatency:
		return "LOW_LATENCY"
	case TypeDataWithAck:
		return "DATA_WITH_ACK"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether t is a known frame type.
func (t Type) Valid() bool {
	return t >= TypeAck && t <= TypeDataWithAck
}

// Frame is one network frame.
type Frame struct {
	Type     Type
	BufferID uint8
	Seq      uint8
	Payload  []byte
}

// Size returns the encoded size, header included.
func (f Frame) Size() int {
	return HeaderSize + len(f.Payload)
}

// NeedsAck reports whether the receiver must acknowledge f.
func (f Frame) NeedsAck() bool {
	return f.Type == TypeDataWithAck
}

// IsAck reports whether f acknowledges another frame.
func (f Frame) IsAck() bool {
	return f.Type == TypeAck
}

// AckedSeq returns the sequence number an ack frame acknowledges.
func (f Frame) AckedSeq() (uint8, bool) {
	if f.Type != TypeAck || len(f.Payload) != 1 {
		return 0, false
	}
	return f.Payload[0], true
}

// Ack builds the acknowledgement of f, sent with sequence number seq.
func (f Frame) Ack(seq uint8) Frame {
	return Frame{
		Type:     TypeAck,
		BufferID: AckBuffer(f.BufferID),
		Seq:      seq,
		Payload:  []byte{f.Seq},
	}
}

// AckBuffer returns the acknowledgement buffer of id.
func AckBuffer(id uint8) uint8 {
	return id + AckOffset
}

// AckedBuffer returns the data buffer an acknowledgement buffer refers to.
func AckedBuffer(id uint8) uint8 {
	return id - AckOffset
}

// OutboundBuffer maps a command's buffer class to the controller buffer id
// and frame type it is sent with.
func OutboundBuffer(b model.Buffer) (uint8, Type) {
	switch b {
	case model.BufferNonAck:
		return BufferControllerNonAck, TypeData
	case model.BufferHigh:
		return BufferControllerHigh, TypeDataWithAck
	default:
		return BufferControllerAck, TypeDataWithAck
	}
}

// MarshalBinary encodes f.
func (f Frame) MarshalBinary() ([]byte, error) {
	return f.AppendBinary(make([]byte, 0, f.Size()))
}

// AppendBinary appends the encoding of f to dst.
func (f Frame) AppendBinary(dst []byte) ([]byte, error) {
	if f.Size() > DefaultMaxFrameSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, f.Size(), DefaultMaxFrameSize)
	}
	dst = append(dst, byte(f.Type), f.BufferID, f.Seq)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(f.Size()))
	return append(dst, f.Payload...), nil
}

// header is the decoded fixed part of a frame.
type header struct {
	typ      Type
	bufferID uint8
	seq      uint8
	size     uint32
}

func parseHeader(b []byte) (header, error) {
	h := header{
		typ:      Type(b[0]),
		bufferID: b[1],
		seq:      b[2],
		size:     binary.LittleEndian.Uint32(b[3:7]),
	}
	if !h.typ.Valid() {
		return h, fmt.Errorf("%w: type %d", ErrInvalidFrame, b[0])
	}
	if h.size < HeaderSize {
		return h, fmt.Errorf("%w: size %d smaller than header", ErrInvalidFrame, h.size)
	}
	return h, nil
}

// Parse decodes the first frame in data and returns it with the number of
// bytes consumed. The payload aliases data.
func Parse(data []byte) (Frame, int, error) {
	if len(data) < HeaderSize {
		return Frame{}, 0, fmt.Errorf("%w: %d header bytes", ErrFrameTruncated, len(data))
	}
	h, err := parseHeader(data)
	if err != nil {
		return Frame{}, 0, err
	}
	if h.size > DefaultMaxFrameSize {
		return Frame{}, 0, fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, h.size, DefaultMaxFrameSize)
	}
	if uint64(h.size) > uint64(len(data)) {
		return Frame{}, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrFrameTruncated, h.size, len(data))
	}
	n := int(h.size)
	return Frame{
		Type:     h.typ,
		BufferID: h.bufferID,
		Seq:      h.seq,
		Payload:  data[HeaderSize:n],
	}, n, nil
}

// ParseAll splits a datagram into frames.
func ParseAll(data []byte) ([]Frame, error) {
	var frames []Frame
	for len(data) > 0 {
		f, n, err := Parse(data)
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
		data = data[n:]
	}
	return frames, nil
}
