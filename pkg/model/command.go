package model

import (
	"errors"
	"fmt"

	"github.com/dronecmd/dronecmd-go/pkg/enum"
)

// ErrCommandNotFound is returned when an identity is not in the table.
var ErrCommandNotFound = errors.New("command not found")

// CommandID identifies a command on the wire. Class is zero for features
// without classes.
type CommandID struct {
	Feature uint8
	Class   uint8
	Command uint16
}

// String renders the identity as feature.class.command.
func (id CommandID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Feature, id.Class, id.Command)
}

// Less orders identities by feature, class, then command.
func (id CommandID) Less(other CommandID) bool {
	if id.Feature != other.Feature {
		return id.Feature < other.Feature
	}
	if id.Class != other.Class {
		return id.Class < other.Class
	}
	return id.Command < other.Command
}

// ArgDescriptor describes one positional argument.
type ArgDescriptor struct {
	// Name is the schema argument name.
	Name string

	// Type is the declared type.
	Type ArgType

	// Position is the zero-based ordinal in the argument list.
	Position int

	// Base is the integer type enum and bitfield arguments are carried as.
	Base ArgType

	// Enum is the referenced enum for TypeEnum, or the bit-position enum of
	// a TypeBitfield argument (may be nil).
	Enum *enum.Enum

	// Description is a human-readable description.
	Description string
}

// WireType returns the type actually written to the wire.
func (a *ArgDescriptor) WireType() ArgType {
	if a.Type == TypeEnum || a.Type == TypeBitfield {
		return a.Base
	}
	return a.Type
}

// Size returns the encoded width, or 0 for strings.
func (a *ArgDescriptor) Size() int {
	return a.WireType().Size()
}

// SettingBinding maps a "changed" notification onto a settings field.
// Min and Max are argument positions, -1 when the notification carries no
// range.
type SettingBinding struct {
	Name    string
	Current int
	Min     int
	Max     int
}

// HasRange reports whether the notification carries min/max bounds.
func (s *SettingBinding) HasRange() bool {
	return s.Min >= 0 && s.Max >= 0
}

// CommandDescriptor describes a command's wire shape.
type CommandDescriptor struct {
	// ID is the wire identity.
	ID CommandID

	// Feature is the owning feature.
	Feature *FeatureDescriptor

	// Class is the class name, empty for features without classes.
	Class string

	// Name is the command name.
	Name string

	// Description is a human-readable description.
	Description string

	// Deprecated marks commands kept only for older peers.
	Deprecated bool

	// Buffer is the network buffer the command travels on.
	Buffer Buffer

	// Args lists the arguments in wire order.
	Args []ArgDescriptor

	// Setting is set for notifications that feed the settings aggregate.
	Setting *SettingBinding
}

// FullName returns "feature.Class.command", or "feature.command" for
// features without classes.
func (d *CommandDescriptor) FullName() string {
	if d.Class == "" {
		return d.Feature.Name + "." + d.Name
	}
	return d.Feature.Name + "." + d.Class + "." + d.Name
}

// FixedSize returns the argument payload width. variable is true when the
// command carries strings, in which case size counts only the fixed part.
func (d *CommandDescriptor) FixedSize() (size int, variable bool) {
	for i := range d.Args {
		if d.Args[i].Type == TypeString {
			variable = true
			continue
		}
		size += d.Args[i].Size()
	}
	return size, variable
}

// Arg returns the argument with the given name.
func (d *CommandDescriptor) Arg(name string) (*ArgDescriptor, bool) {
	for i := range d.Args {
		if d.Args[i].Name == name {
			return &d.Args[i], true
		}
	}
	return nil, false
}
