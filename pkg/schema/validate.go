package schema

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSchema is wrapped by every validation failure.
var ErrInvalidSchema = errors.New("invalid schema")

// Wire type names accepted in ArgDef.Type and EnumDef.Type.
var scalarTypes = map[string]bool{
	"i8": true, "u8": true, "i16": true, "u16": true,
	"i32": true, "u32": true, "i64": true, "u64": true,
	"float": true, "double": true, "string": true,
}

var enumWidths = map[string]bool{
	"i8": true, "u8": true, "i16": true, "u16": true, "i32": true, "u32": true,
}

// enumRange returns the values an enum of wire type typ can carry. The
// empty type is i32.
func enumRange(typ string) (lo, hi int64) {
	switch typ {
	case "i8":
		return math.MinInt8, math.MaxInt8
	case "u8":
		return 0, math.MaxUint8
	case "i16":
		return math.MinInt16, math.MaxInt16
	case "u16":
		return 0, math.MaxUint16
	case "u32":
		return 0, math.MaxInt32
	default:
		return math.MinInt32, math.MaxInt32
	}
}

var bitWidths = map[string]bool{
	"u8": true, "u16": true, "u32": true, "u64": true,
}

// EnumMaxName is the schema value name treated as a count marker.
const EnumMaxName = "MAX"

// Validate checks the bundle for structural errors: duplicate ids, duplicate
// enum values, unknown argument types, dangling enum references and setting
// roles that do not name an argument.
func Validate(b *Bundle) error {
	if b == nil {
		return fmt.Errorf("%w: nil bundle", ErrInvalidSchema)
	}
	if b.Shared != nil {
		for i := range b.Shared.Enums {
			if err := validateEnum("shared", &b.Shared.Enums[i]); err != nil {
				return err
			}
		}
	}

	featureIDs := make(map[uint8]string)
	featureNames := make(map[string]bool)
	for _, f := range b.Features {
		if prev, ok := featureIDs[f.ID]; ok {
			return fmt.Errorf("%w: feature %s reuses id %d of %s", ErrInvalidSchema, f.Name, f.ID, prev)
		}
		if featureNames[f.Name] {
			return fmt.Errorf("%w: duplicate feature %s", ErrInvalidSchema, f.Name)
		}
		featureIDs[f.ID] = f.Name
		featureNames[f.Name] = true

		if err := validateFeature(f, b.Shared); err != nil {
			return err
		}
	}
	return nil
}

func validateFeature(f *FeatureDef, shared *SharedTypes) error {
	if len(f.Classes) > 0 && len(f.Commands) > 0 {
		return fmt.Errorf("%w: feature %s mixes classes and top-level commands", ErrInvalidSchema, f.Name)
	}

	enumNames := make(map[string]bool)
	for i := range f.Enums {
		e := &f.Enums[i]
		if enumNames[e.Name] {
			return fmt.Errorf("%w: feature %s: duplicate enum %s", ErrInvalidSchema, f.Name, e.Name)
		}
		enumNames[e.Name] = true
		if err := validateEnum(f.Name, e); err != nil {
			return err
		}
	}

	resolve := func(name string) *EnumDef {
		if e := f.FindEnum(name); e != nil {
			return e
		}
		return shared.FindEnum(name)
	}

	if len(f.Classes) == 0 {
		return validateCommands(f.Name, f.Commands, resolve)
	}

	classIDs := make(map[uint8]string)
	for _, c := range f.Classes {
		if prev, ok := classIDs[c.ID]; ok {
			return fmt.Errorf("%w: feature %s: class %s reuses id %d of %s", ErrInvalidSchema, f.Name, c.Name, c.ID, prev)
		}
		classIDs[c.ID] = c.Name
		if err := validateCommands(f.Name+"."+c.Name, c.Commands, resolve); err != nil {
			return err
		}
	}
	return nil
}

func validateEnum(scope string, e *EnumDef) error {
	if e.Name == "" {
		return fmt.Errorf("%w: %s: enum missing name", ErrInvalidSchema, scope)
	}
	if e.Type != "" && !enumWidths[e.Type] {
		return fmt.Errorf("%w: %s: enum %s has unsupported type %q", ErrInvalidSchema, scope, e.Name, e.Type)
	}
	if len(e.Values) == 0 {
		return fmt.Errorf("%w: %s: enum %s has no values", ErrInvalidSchema, scope, e.Name)
	}

	lo, hi := enumRange(e.Type)
	values := make(map[int64]string)
	names := make(map[string]bool)
	for _, v := range e.Values {
		if v.Name == "" {
			return fmt.Errorf("%w: %s: enum %s has an unnamed value", ErrInvalidSchema, scope, e.Name)
		}
		if names[v.Name] {
			return fmt.Errorf("%w: %s: enum %s: duplicate name %s", ErrInvalidSchema, scope, e.Name, v.Name)
		}
		names[v.Name] = true
		if v.Name == EnumMaxName {
			continue
		}
		if prev, ok := values[v.Value]; ok {
			return fmt.Errorf("%w: %s: enum %s: %s reuses value %d of %s", ErrInvalidSchema, scope, e.Name, v.Name, v.Value, prev)
		}
		if v.Value < lo || v.Value > hi {
			return fmt.Errorf("%w: %s: enum %s: value %d out of range for %s", ErrInvalidSchema, scope, e.Name, v.Value, enumType(e.Type))
		}
		if v.Value == -1<<31 {
			return fmt.Errorf("%w: %s: enum %s: value %d is reserved for UNKNOWN", ErrInvalidSchema, scope, e.Name, v.Value)
		}
		values[v.Value] = v.Name
	}
	return nil
}

func enumType(typ string) string {
	if typ == "" {
		return "i32"
	}
	return typ
}

func validateCommands(scope string, cmds []CommandDef, resolve func(string) *EnumDef) error {
	ids := make(map[uint16]string)
	for _, c := range cmds {
		if c.Name == "" {
			return fmt.Errorf("%w: %s: command %d missing name", ErrInvalidSchema, scope, c.ID)
		}
		if prev, ok := ids[c.ID]; ok {
			return fmt.Errorf("%w: %s: command %s reuses id %d of %s", ErrInvalidSchema, scope, c.Name, c.ID, prev)
		}
		ids[c.ID] = c.Name

		switch c.Buffer {
		case "", "ack", "nonack", "high":
		default:
			return fmt.Errorf("%w: %s.%s: unknown buffer %q", ErrInvalidSchema, scope, c.Name, c.Buffer)
		}

		argNames := make(map[string]bool)
		for _, a := range c.Args {
			if err := validateArg(a, resolve); err != nil {
				return fmt.Errorf("%s.%s: %w", scope, c.Name, err)
			}
			if argNames[a.Name] {
				return fmt.Errorf("%w: %s.%s: duplicate argument %s", ErrInvalidSchema, scope, c.Name, a.Name)
			}
			argNames[a.Name] = true
		}

		if s := c.Setting; s != nil {
			if s.Name == "" {
				return fmt.Errorf("%w: %s.%s: setting missing name", ErrInvalidSchema, scope, c.Name)
			}
			if len(c.Args) == 0 {
				return fmt.Errorf("%w: %s.%s: setting %s on a command without arguments", ErrInvalidSchema, scope, c.Name, s.Name)
			}
			for _, role := range []string{s.Current, s.Min, s.Max} {
				if role != "" && !argNames[role] {
					return fmt.Errorf("%w: %s.%s: setting %s names unknown argument %s", ErrInvalidSchema, scope, c.Name, s.Name, role)
				}
			}
			if (s.Min == "") != (s.Max == "") {
				return fmt.Errorf("%w: %s.%s: setting %s needs both min and max", ErrInvalidSchema, scope, c.Name, s.Name)
			}
		}
	}
	return nil
}

func validateArg(a ArgDef, resolve func(string) *EnumDef) error {
	if a.Name == "" {
		return fmt.Errorf("%w: argument missing name", ErrInvalidSchema)
	}
	switch a.Type {
	case "enum":
		if a.Enum == "" {
			return fmt.Errorf("%w: argument %s: enum type without enum reference", ErrInvalidSchema, a.Name)
		}
		if resolve(a.Enum) == nil {
			return fmt.Errorf("%w: argument %s: unknown enum %s", ErrInvalidSchema, a.Name, a.Enum)
		}
	case "bitfield":
		if a.Bits != "" && !bitWidths[a.Bits] {
			return fmt.Errorf("%w: argument %s: unsupported bitfield width %q", ErrInvalidSchema, a.Name, a.Bits)
		}
		if a.Enum != "" && resolve(a.Enum) == nil {
			return fmt.Errorf("%w: argument %s: unknown bit enum %s", ErrInvalidSchema, a.Name, a.Enum)
		}
	default:
		if !scalarTypes[a.Type] {
			return fmt.Errorf("%w: argument %s: unknown type %q", ErrInvalidSchema, a.Name, a.Type)
		}
	}
	return nil
}
