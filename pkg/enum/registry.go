package enum

import (
	"fmt"
	"sort"
)

// Registry indexes enums by qualified kind. It is built once and is
// read-only afterwards, so concurrent lookups need no locking.
type Registry struct {
	enums map[string]*Enum
}

// NewRegistry builds a registry from enums. Kinds must be unique.
func NewRegistry(enums ...*Enum) (*Registry, error) {
	r := &Registry{enums: make(map[string]*Enum, len(enums))}
	for _, e := range enums {
		if _, ok := r.enums[e.kind]; ok {
			return nil, fmt.Errorf("enum %s registered twice", e.kind)
		}
		r.enums[e.kind] = e
	}
	return r, nil
}

// Resolve maps v to a variant of kind. It never fails: unknown values and
// unknown kinds both yield the UNKNOWN sentinel.
func (r *Registry) Resolve(kind string, v int32) Variant {
	if e, ok := r.enums[kind]; ok {
		return e.Resolve(v)
	}
	return Unknown(kind)
}

// Enum returns the enum registered under kind.
func (r *Registry) Enum(kind string) (*Enum, bool) {
	e, ok := r.enums[kind]
	return e, ok
}

// Kinds returns all registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.enums))
	for k := range r.enums {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Len returns the number of registered enums.
func (r *Registry) Len() int {
	return len(r.enums)
}
