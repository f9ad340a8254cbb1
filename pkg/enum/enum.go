package enum

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/dronecmd/dronecmd-go/pkg/schema"
)

// Sentinel values shared by every enum.
const (
	UnknownName        = "UNKNOWN"
	UnknownValue int32 = math.MinInt32

	UnknownDescription = "Dummy value for all unknown cases"
)

// DefaultWidth is the wire width of an enum that does not declare one.
const DefaultWidth = "i32"

// ErrDuplicateValue is returned when two variants share an integer value.
var ErrDuplicateValue = errors.New("duplicate enum value")

// Variant is one symbolic value of an enum.
type Variant struct {
	Enum        string // qualified enum kind, e.g. "animation.Type"
	Name        string
	Value       int32
	Description string
}

// IsUnknown reports whether v is the UNKNOWN sentinel.
func (v Variant) IsUnknown() bool {
	return v.Value == UnknownValue && v.Name == UnknownName
}

// String returns the symbolic name.
func (v Variant) String() string {
	return v.Name
}

// Describe returns the variant's documentation, or its name when the schema
// carries none.
func Describe(v Variant) string {
	if v.Description != "" {
		return v.Description
	}
	return v.Name
}

// Unknown returns the sentinel variant for kind.
func Unknown(kind string) Variant {
	return Variant{Enum: kind, Name: UnknownName, Value: UnknownValue, Description: UnknownDescription}
}

// Definition describes an enum to New.
type Definition struct {
	Kind        string
	Width       string // "i8".."u32"; empty means DefaultWidth
	Bitfield    bool
	Description string
	Variants    []Variant
	Max         *int32
}

// Enum is an immutable value table. It is safe for concurrent use.
type Enum struct {
	kind        string
	width       string
	bitfield    bool
	description string
	max         int32
	hasMax      bool

	ordered []Variant
	byValue map[int32]Variant
	byName  map[string]Variant
	unknown Variant
}

// New builds an Enum, rejecting duplicate values and names.
func New(def Definition) (*Enum, error) {
	width := def.Width
	if width == "" {
		width = DefaultWidth
	}
	e := &Enum{
		kind:        def.Kind,
		width:       width,
		bitfield:    def.Bitfield,
		description: def.Description,
		ordered:     make([]Variant, 0, len(def.Variants)),
		byValue:     make(map[int32]Variant, len(def.Variants)),
		byName:      make(map[string]Variant, len(def.Variants)),
		unknown:     Unknown(def.Kind),
	}
	if def.Max != nil {
		e.max, e.hasMax = *def.Max, true
	}

	for _, v := range def.Variants {
		v.Enum = def.Kind
		if v.Value == UnknownValue {
			return nil, fmt.Errorf("enum %s: %s uses the reserved UNKNOWN value", def.Kind, v.Name)
		}
		if prev, ok := e.byValue[v.Value]; ok {
			return nil, fmt.Errorf("enum %s: %s and %s: %w %d", def.Kind, prev.Name, v.Name, ErrDuplicateValue, v.Value)
		}
		if _, ok := e.byName[v.Name]; ok {
			return nil, fmt.Errorf("enum %s: duplicate name %s", def.Kind, v.Name)
		}
		e.byValue[v.Value] = v
		e.byName[v.Name] = v
		e.ordered = append(e.ordered, v)
	}
	sort.SliceStable(e.ordered, func(i, j int) bool { return e.ordered[i].Value < e.ordered[j].Value })
	return e, nil
}

// FromSchema builds an Enum from its YAML definition. A value named MAX is
// kept as count metadata and is not decodable.
func FromSchema(kind string, def *schema.EnumDef) (*Enum, error) {
	d := Definition{
		Kind:        kind,
		Width:       def.Type,
		Bitfield:    def.Bitfield,
		Description: def.Description,
	}
	for _, v := range def.Values {
		if v.Name == schema.EnumMaxName {
			m := int32(v.Value)
			d.Max = &m
			continue
		}
		d.Variants = append(d.Variants, Variant{Name: v.Name, Value: int32(v.Value), Description: v.Description})
	}
	return New(d)
}

// Kind returns the qualified enum name.
func (e *Enum) Kind() string { return e.kind }

// Width returns the wire type the enum is encoded as.
func (e *Enum) Width() string { return e.width }

// Bitfield reports whether variant values are bit positions.
func (e *Enum) Bitfield() bool { return e.bitfield }

// Description returns the enum's documentation string.
func (e *Enum) Description() string { return e.description }

// Max returns the MAX count marker, if the schema declared one.
func (e *Enum) Max() (int32, bool) { return e.max, e.hasMax }

// Unknown returns this enum's sentinel.
func (e *Enum) Unknown() Variant { return e.unknown }

// Resolve maps v to its variant, or to the UNKNOWN sentinel.
func (e *Enum) Resolve(v int32) Variant {
	if variant, ok := e.byValue[v]; ok {
		return variant
	}
	return e.unknown
}

// Lookup is Resolve with an explicit found flag.
func (e *Enum) Lookup(v int32) (Variant, bool) {
	variant, ok := e.byValue[v]
	return variant, ok
}

// Has reports whether v is a declared value.
func (e *Enum) Has(v int32) bool {
	_, ok := e.byValue[v]
	return ok
}

// ByName finds a variant by symbolic name.
func (e *Enum) ByName(name string) (Variant, bool) {
	v, ok := e.byName[name]
	return v, ok
}

// Values returns the declared variants ordered by value.
func (e *Enum) Values() []Variant {
	out := make([]Variant, len(e.ordered))
	copy(out, e.ordered)
	return out
}

// Len returns the number of declared variants, excluding UNKNOWN.
func (e *Enum) Len() int { return len(e.ordered) }

// BitsSet returns the variants whose bit is set in mask. Bits without a
// declared variant are ignored.
func (e *Enum) BitsSet(mask uint64) []Variant {
	var out []Variant
	for _, v := range e.ordered {
		if v.Value >= 0 && v.Value < 64 && mask&(1<<uint(v.Value)) != 0 {
			out = append(out, v)
		}
	}
	return out
}

// Mask builds a bitmask from variants.
func (e *Enum) Mask(variants ...Variant) uint64 {
	var mask uint64
	for _, v := range variants {
		if v.Value >= 0 && v.Value < 64 {
			mask |= 1 << uint(v.Value)
		}
	}
	return mask
}
