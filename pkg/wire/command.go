package wire

import (
	"strings"

	"github.com/dronecmd/dronecmd-go/pkg/model"
)

// Command is a decoded command: its identity and positional arguments in
// declared order. Descriptor is set by Decode and may be nil on commands
// built by hand; Encode looks the descriptor up by ID.
type Command struct {
	ID         model.CommandID
	Args       []Value
	Descriptor *model.CommandDescriptor
}

// Arg returns the argument with the given schema name. It needs a
// descriptor.
func (c *Command) Arg(name string) (Value, bool) {
	if c.Descriptor == nil {
		return Value{}, false
	}
	a, ok := c.Descriptor.Arg(name)
	if !ok || a.Position >= len(c.Args) {
		return Value{}, false
	}
	return c.Args[a.Position], true
}

// Name returns the descriptor's full name, or the numeric identity.
func (c *Command) Name() string {
	if c.Descriptor == nil {
		return c.ID.String()
	}
	return c.Descriptor.FullName()
}

// String renders the command as name(arg=value, ...).
func (c *Command) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name())
	sb.WriteByte('(')
	for i, v := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		if c.Descriptor != nil && i < len(c.Descriptor.Args) {
			sb.WriteString(c.Descriptor.Args[i].Name)
			sb.WriteByte('=')
		}
		if v.Kind() == KindString {
			sb.WriteByte('"')
			sb.WriteString(v.Text())
			sb.WriteByte('"')
		} else {
			sb.WriteString(v.String())
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
