package model

import "fmt"

// ArgType is the wire type of a command argument.
type ArgType uint8

// Argument wire types.
const (
	TypeI8 ArgType = iota + 1
	TypeU8
	TypeI16
	TypeU16
	TypeI32
	TypeU32
	TypeI64
	TypeU64
	TypeFloat
	TypeDouble
	TypeString
	TypeEnum
	TypeBitfield
)

var argTypeNames = map[ArgType]string{
	TypeI8:       "i8",
	TypeU8:       "u8",
	TypeI16:      "i16",
	TypeU16:      "u16",
	TypeI32:      "i32",
	TypeU32:      "u32",
	TypeI64:      "i64",
	TypeU64:      "u64",
	TypeFloat:    "float",
	TypeDouble:   "double",
	TypeString:   "string",
	TypeEnum:     "enum",
	TypeBitfield: "bitfield",
}

// String returns the schema name of the type.
func (t ArgType) String() string {
	if name, ok := argTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseArgType maps a schema type name to an ArgType.
func ParseArgType(s string) (ArgType, error) {
	for t, name := range argTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown argument type %q", s)
}

// Size returns the encoded width in bytes. Strings are variable and report 0;
// enum and bitfield have no width of their own.
func (t ArgType) Size() int {
	switch t {
	case TypeI8, TypeU8:
		return 1
	case TypeI16, TypeU16:
		return 2
	case TypeI32, TypeU32, TypeFloat:
		return 4
	case TypeI64, TypeU64, TypeDouble:
		return 8
	default:
		return 0
	}
}

// Signed reports whether t is a signed integer type.
func (t ArgType) Signed() bool {
	switch t {
	case TypeI8, TypeI16, TypeI32, TypeI64:
		return true
	}
	return false
}

// Integer reports whether t is a fixed-width integer type.
func (t ArgType) Integer() bool {
	return t >= TypeI8 && t <= TypeU64
}

// Buffer selects the network buffer a command is sent on.
type Buffer uint8

// Buffers.
const (
	BufferAck Buffer = iota
	BufferNonAck
	BufferHigh
)

// String returns the schema name of the buffer.
func (b Buffer) String() string {
	switch b {
	case BufferAck:
		return "ack"
	case BufferNonAck:
		return "nonack"
	case BufferHigh:
		return "high"
	default:
		return "UNKNOWN"
	}
}

func parseBuffer(s string) (Buffer, error) {
	switch s {
	case "", "ack":
		return BufferAck, nil
	case "nonack":
		return BufferNonAck, nil
	case "high":
		return BufferHigh, nil
	}
	return 0, fmt.Errorf("unknown buffer %q", s)
}
