package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/dronecmd/dronecmd-go/pkg/enum"
	"github.com/dronecmd/dronecmd-go/pkg/model"
)

// Codec encodes and decodes command payloads against a descriptor table.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	table *model.Table
}

// NewCodec creates a codec over table.
func NewCodec(table *model.Table) *Codec {
	return &Codec{table: table}
}

// Table returns the descriptor table.
func (c *Codec) Table() *model.Table {
	return c.table
}

// DecodeHeader parses the command identity and returns it with the header
// length. The feature must be known to decide whether a class byte follows.
func (c *Codec) DecodeHeader(frame []byte) (model.CommandID, int, error) {
	if len(frame) < 1 {
		return model.CommandID{}, 0, fmt.Errorf("%w: empty frame", ErrTruncatedFrame)
	}
	id := model.CommandID{Feature: frame[0]}
	f, ok := c.table.Feature(id.Feature)
	if !ok {
		return id, 0, fmt.Errorf("%w: feature %d", ErrUnknownCommand, id.Feature)
	}

	n := f.HeaderSize()
	if len(frame) < n {
		return id, 0, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncatedFrame, n, len(frame))
	}
	off := 1
	if f.HasClasses {
		id.Class = frame[1]
		off++
	}
	id.Command = binary.LittleEndian.Uint16(frame[off:])
	return id, n, nil
}

// Decode parses one command payload. A non-nil Command is returned when the
// error is nil or a *TrailingBytesError.
func (c *Codec) Decode(frame []byte) (*Command, error) {
	id, off, err := c.DecodeHeader(frame)
	if err != nil {
		return nil, err
	}
	desc, err := c.table.Get(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}

	r := reader{buf: frame, off: off}
	args := make([]Value, 0, len(desc.Args))
	for i := range desc.Args {
		a := &desc.Args[i]
		v, err := r.value(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %s: %w", desc.FullName(), a.Name, err)
		}
		args = append(args, v)
	}

	cmd := &Command{ID: id, Args: args, Descriptor: desc}
	if rest := len(frame) - r.off; rest > 0 {
		return cmd, &TrailingBytesError{ID: id, Count: rest}
	}
	return cmd, nil
}

// Encode serializes cmd. The descriptor is looked up by cmd.ID.
func (c *Codec) Encode(cmd *Command) ([]byte, error) {
	desc, err := c.table.Get(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.ID)
	}
	if len(cmd.Args) != len(desc.Args) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArgumentMismatch, desc.FullName(), len(desc.Args), len(cmd.Args))
	}

	size, _ := desc.FixedSize()
	buf := make([]byte, 0, desc.Feature.HeaderSize()+size)
	buf = append(buf, cmd.ID.Feature)
	if desc.Feature.HasClasses {
		buf = append(buf, cmd.ID.Class)
	}
	buf = binary.LittleEndian.AppendUint16(buf, cmd.ID.Command)

	for i := range desc.Args {
		a := &desc.Args[i]
		if buf, err = appendValue(buf, a, cmd.Args[i]); err != nil {
			return nil, fmt.Errorf("%s: argument %s: %w", desc.FullName(), a.Name, err)
		}
	}
	return buf, nil
}

type reader struct {
	buf []byte
	off int
}

func (r *reader) need(n int) ([]byte, error) {
	if len(r.buf)-r.off < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedFrame, n, len(r.buf)-r.off)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// integer reads a fixed-width integer, sign-extending signed types.
func (r *reader) integer(t model.ArgType) (int64, uint64, error) {
	b, err := r.need(t.Size())
	if err != nil {
		return 0, 0, err
	}
	switch t {
	case model.TypeI8:
		v := int8(b[0])
		return int64(v), uint64(v), nil
	case model.TypeU8:
		return int64(b[0]), uint64(b[0]), nil
	case model.TypeI16:
		v := int16(binary.LittleEndian.Uint16(b))
		return int64(v), uint64(v), nil
	case model.TypeU16:
		v := binary.LittleEndian.Uint16(b)
		return int64(v), uint64(v), nil
	case model.TypeI32:
		v := int32(binary.LittleEndian.Uint32(b))
		return int64(v), uint64(v), nil
	case model.TypeU32:
		v := binary.LittleEndian.Uint32(b)
		return int64(v), uint64(v), nil
	case model.TypeI64:
		v := int64(binary.LittleEndian.Uint64(b))
		return v, uint64(v), nil
	case model.TypeU64:
		v := binary.LittleEndian.Uint64(b)
		return int64(v), v, nil
	}
	return 0, 0, fmt.Errorf("%w: %s is not an integer type", ErrArgumentMismatch, t)
}

func (r *reader) value(a *model.ArgDescriptor) (Value, error) {
	switch a.Type {
	case model.TypeFloat:
		b, err := r.need(4)
		if err != nil {
			return Value{}, err
		}
		return Float32(math.Float32frombits(binary.LittleEndian.Uint32(b))), nil

	case model.TypeDouble:
		b, err := r.need(8)
		if err != nil {
			return Value{}, err
		}
		return Float64(math.Float64frombits(binary.LittleEndian.Uint64(b))), nil

	case model.TypeString:
		rest := r.buf[r.off:]
		end := bytes.IndexByte(rest, 0)
		if end < 0 {
			return Value{}, fmt.Errorf("%w: unterminated string", ErrTruncatedFrame)
		}
		r.off += end + 1
		return Str(string(rest[:end])), nil

	case model.TypeEnum:
		i, _, err := r.integer(a.Base)
		if err != nil {
			return Value{}, err
		}
		return ResolveEnum(a.Enum, i), nil

	case model.TypeBitfield:
		_, u, err := r.integer(a.Base)
		if err != nil {
			return Value{}, err
		}
		return Bits(u), nil
	}

	i, u, err := r.integer(a.Type)
	if err != nil {
		return Value{}, err
	}
	if a.Type.Signed() {
		return Int64(i), nil
	}
	return Uint64(u), nil
}

// ResolveEnum builds the enum Value for a raw wire integer. Integers the
// enum does not declare resolve to its UNKNOWN sentinel, keeping raw.
func ResolveEnum(e *enum.Enum, raw int64) Value {
	if raw >= math.MinInt32 && raw <= math.MaxInt32 {
		v := e.Resolve(int32(raw))
		if !v.IsUnknown() {
			return EnumValue(v)
		}
	}
	return unknownEnum(e.Unknown(), raw)
}

func appendValue(buf []byte, a *model.ArgDescriptor, v Value) ([]byte, error) {
	switch a.Type {
	case model.TypeFloat:
		if v.kind != KindFloat {
			return nil, kindMismatch(a, v)
		}
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(v.f))), nil

	case model.TypeDouble:
		if v.kind != KindFloat {
			return nil, kindMismatch(a, v)
		}
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.f)), nil

	case model.TypeString:
		if v.kind != KindString {
			return nil, kindMismatch(a, v)
		}
		if strings.IndexByte(v.s, 0) >= 0 {
			return nil, fmt.Errorf("%w: string contains NUL", ErrValueOutOfRange)
		}
		buf = append(buf, v.s...)
		return append(buf, 0), nil

	case model.TypeEnum:
		if v.kind != KindEnum {
			return nil, kindMismatch(a, v)
		}
		variant := v.variant
		if variant.IsUnknown() {
			return nil, fmt.Errorf("%w: %s sentinel", ErrInvalidEnumForEncode, enum.UnknownName)
		}
		if variant.Enum != "" && variant.Enum != a.Enum.Kind() {
			return nil, fmt.Errorf("%w: variant of %s given for %s", ErrInvalidEnumForEncode, variant.Enum, a.Enum.Kind())
		}
		if !a.Enum.Has(variant.Value) {
			return nil, fmt.Errorf("%w: %d not declared by %s", ErrInvalidEnumForEncode, variant.Value, a.Enum.Kind())
		}
		return appendSigned(buf, a.Base, int64(variant.Value))

	case model.TypeBitfield:
		switch v.kind {
		case KindBits, KindUint:
			return appendUnsigned(buf, a.Base, v.u)
		case KindInt:
			if v.i < 0 {
				return nil, fmt.Errorf("%w: negative bitfield %d", ErrValueOutOfRange, v.i)
			}
			return appendUnsigned(buf, a.Base, uint64(v.i))
		}
		return nil, kindMismatch(a, v)
	}

	switch v.kind {
	case KindInt:
		return appendSigned(buf, a.Type, v.i)
	case KindUint:
		return appendUnsigned(buf, a.Type, v.u)
	}
	return nil, kindMismatch(a, v)
}

func kindMismatch(a *model.ArgDescriptor, v Value) error {
	return fmt.Errorf("%w: %s argument given a %s value", ErrArgumentMismatch, a.Type, v.kind)
}

// appendSigned range-checks v against t and appends it.
func appendSigned(buf []byte, t model.ArgType, v int64) ([]byte, error) {
	if !t.Signed() {
		if v < 0 {
			return nil, fmt.Errorf("%w: %d does not fit %s", ErrValueOutOfRange, v, t)
		}
		return appendUnsigned(buf, t, uint64(v))
	}
	var lo, hi int64
	switch t {
	case model.TypeI8:
		lo, hi = math.MinInt8, math.MaxInt8
	case model.TypeI16:
		lo, hi = math.MinInt16, math.MaxInt16
	case model.TypeI32:
		lo, hi = math.MinInt32, math.MaxInt32
	default:
		lo, hi = math.MinInt64, math.MaxInt64
	}
	if v < lo || v > hi {
		return nil, fmt.Errorf("%w: %d does not fit %s", ErrValueOutOfRange, v, t)
	}
	return putInteger(buf, t, uint64(v)), nil
}

// appendUnsigned range-checks v against t and appends it.
func appendUnsigned(buf []byte, t model.ArgType, v uint64) ([]byte, error) {
	var hi uint64
	switch t {
	case model.TypeU8:
		hi = math.MaxUint8
	case model.TypeU16:
		hi = math.MaxUint16
	case model.TypeU32:
		hi = math.MaxUint32
	case model.TypeU64:
		hi = math.MaxUint64
	case model.TypeI8:
		hi = math.MaxInt8
	case model.TypeI16:
		hi = math.MaxInt16
	case model.TypeI32:
		hi = math.MaxInt32
	case model.TypeI64:
		hi = math.MaxInt64
	default:
		return nil, fmt.Errorf("%w: %s is not an integer type", ErrArgumentMismatch, t)
	}
	if v > hi {
		return nil, fmt.Errorf("%w: %d does not fit %s", ErrValueOutOfRange, v, t)
	}
	return putInteger(buf, t, v), nil
}

// putInteger appends the low t.Size() bytes of v in little-endian order.
func putInteger(buf []byte, t model.ArgType, v uint64) []byte {
	switch t.Size() {
	case 1:
		return append(buf, byte(v))
	case 2:
		return binary.LittleEndian.AppendUint16(buf, uint16(v))
	case 4:
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(buf, v)
	}
}
