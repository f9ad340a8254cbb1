package wire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dronecmd/dronecmd-go/pkg/model"
)

// ParseArgs converts textual arguments into Values for desc. Integers accept
// any strconv base prefix. Enums accept a variant name or a declared number.
// Bitfields accept a number or bit names joined by '|'.
func ParseArgs(desc *model.CommandDescriptor, args []string) ([]Value, error) {
	if len(args) != len(desc.Args) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArgumentMismatch, desc.FullName(), len(desc.Args), len(args))
	}
	out := make([]Value, 0, len(args))
	for i := range desc.Args {
		v, err := parseArg(&desc.Args[i], args[i])
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", desc.Args[i].Name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseArg(a *model.ArgDescriptor, s string) (Value, error) {
	switch a.Type {
	case model.TypeString:
		return Str(s), nil

	case model.TypeFloat:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, err
		}
		return Float32(float32(f)), nil

	case model.TypeDouble:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, err
		}
		return Float64(f), nil

	case model.TypeEnum:
		if v, ok := a.Enum.ByName(s); ok {
			return EnumValue(v), nil
		}
		n, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a %s variant", ErrInvalidEnumForEncode, s, a.Enum.Kind())
		}
		v, ok := a.Enum.Lookup(int32(n))
		if !ok {
			return Value{}, fmt.Errorf("%w: %d not declared by %s", ErrInvalidEnumForEncode, n, a.Enum.Kind())
		}
		return EnumValue(v), nil

	case model.TypeBitfield:
		if u, err := strconv.ParseUint(s, 0, 64); err == nil {
			return Bits(u), nil
		}
		if a.Enum == nil {
			return Value{}, fmt.Errorf("%w: %q is not a number", ErrArgumentMismatch, s)
		}
		var mask uint64
		for _, name := range strings.Split(s, "|") {
			bit, ok := a.Enum.ByName(strings.TrimSpace(name))
			if !ok {
				return Value{}, fmt.Errorf("%w: unknown bit %q of %s", ErrArgumentMismatch, name, a.Enum.Kind())
			}
			mask |= a.Enum.Mask(bit)
		}
		return Bits(mask), nil
	}

	if a.Type.Signed() {
		n, err := strconv.ParseInt(s, 0, a.Type.Size()*8)
		if err != nil {
			return Value{}, err
		}
		return Int64(n), nil
	}
	n, err := strconv.ParseUint(s, 0, a.Type.Size()*8)
	if err != nil {
		return Value{}, err
	}
	return Uint64(n), nil
}
