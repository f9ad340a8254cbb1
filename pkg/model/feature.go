package model

// FeatureDescriptor describes a feature.
type FeatureDescriptor struct {
	// ID is the feature byte on the wire.
	ID uint8

	// Name is the schema feature name.
	Name string

	// Description is a human-readable description.
	Description string

	// HasClasses reports whether a class byte follows the feature byte.
	HasClasses bool

	// Classes maps class ids to names.
	Classes map[uint8]string
}

// ClassName returns the name of class id, or "" if unknown.
func (f *FeatureDescriptor) ClassName(id uint8) string {
	return f.Classes[id]
}

// HeaderSize returns the length of the identity header for this feature.
func (f *FeatureDescriptor) HeaderSize() int {
	if f.HasClasses {
		return 4
	}
	return 3
}
