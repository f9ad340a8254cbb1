package wire

import (
	"fmt"
	"strconv"

	"github.com/dronecmd/dronecmd-go/pkg/enum"
)

// Kind tags the payload held by a Value.
type Kind uint8

// Value kinds.
const (
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindEnum
	KindBits
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindBits:
		return "bits"
	default:
		return "invalid"
	}
}

// Value is one decoded argument. The zero Value is invalid.
type Value struct {
	kind    Kind
	i       int64
	u       uint64
	f       float64
	s       string
	variant enum.Variant
}

// Int8 returns a signed integer value.
func Int8(v int8) Value { return Value{kind: KindInt, i: int64(v)} }

// Int16 returns a signed integer value.
func Int16(v int16) Value { return Value{kind: KindInt, i: int64(v)} }

// Int32 returns a signed integer value.
func Int32(v int32) Value { return Value{kind: KindInt, i: int64(v)} }

// Int64 returns a signed integer value.
func Int64(v int64) Value { return Value{kind: KindInt, i: v} }

// Uint8 returns an unsigned integer value.
func Uint8(v uint8) Value { return Value{kind: KindUint, u: uint64(v)} }

// Uint16 returns an unsigned integer value.
func Uint16(v uint16) Value { return Value{kind: KindUint, u: uint64(v)} }

// Uint32 returns an unsigned integer value.
func Uint32(v uint32) Value { return Value{kind: KindUint, u: uint64(v)} }

// Uint64 returns an unsigned integer value.
func Uint64(v uint64) Value { return Value{kind: KindUint, u: v} }

// Float32 returns a single precision float value.
func Float32(v float32) Value { return Value{kind: KindFloat, f: float64(v)} }

// Float64 returns a double precision float value.
func Float64(v float64) Value { return Value{kind: KindFloat, f: v} }

// Str returns a string value.
func Str(v string) Value { return Value{kind: KindString, s: v} }

// EnumValue returns an enum value holding variant.
func EnumValue(variant enum.Variant) Value {
	return Value{kind: KindEnum, i: int64(variant.Value), variant: variant}
}

// Bits returns a raw bitfield value.
func Bits(mask uint64) Value { return Value{kind: KindBits, u: mask} }

// unknownEnum keeps the raw wire integer next to the sentinel.
func unknownEnum(sentinel enum.Variant, raw int64) Value {
	return Value{kind: KindEnum, i: raw, variant: sentinel}
}

// Kind returns the payload tag.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a payload.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Int returns integer payloads as int64. Enums return their raw wire integer.
func (v Value) Int() int64 {
	switch v.kind {
	case KindUint, KindBits:
		return int64(v.u)
	case KindFloat:
		return int64(v.f)
	}
	return v.i
}

// Uint returns integer payloads as uint64.
func (v Value) Uint() uint64 {
	switch v.kind {
	case KindInt, KindEnum:
		return uint64(v.i)
	case KindFloat:
		return uint64(v.f)
	}
	return v.u
}

// Float returns the float payload, converting integers.
func (v Value) Float() float64 {
	switch v.kind {
	case KindInt, KindEnum:
		return float64(v.i)
	case KindUint, KindBits:
		return float64(v.u)
	}
	return v.f
}

// Variant returns the resolved enum variant. It is the zero Variant for
// non-enum values and the UNKNOWN sentinel for undeclared wire integers.
func (v Value) Variant() enum.Variant { return v.variant }

// Text returns the string payload.
func (v Value) Text() string { return v.s }

// Has reports whether bit is set in a bitfield value.
func (v Value) Has(bit enum.Variant) bool {
	return bit.Value >= 0 && bit.Value < 64 && v.Uint()&(1<<uint(bit.Value)) != 0
}

// String formats the value for humans. Strings are returned unquoted.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindEnum:
		if v.variant.IsUnknown() {
			return fmt.Sprintf("%s(%d)", enum.UnknownName, v.i)
		}
		return v.variant.Name
	case KindBits:
		return fmt.Sprintf("0x%x", v.u)
	default:
		return "<invalid>"
	}
}
