package features

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/dronecmd/dronecmd-go/pkg/enum"
	"github.com/dronecmd/dronecmd-go/pkg/model"
	"github.com/dronecmd/dronecmd-go/pkg/schema"
	"github.com/dronecmd/dronecmd-go/pkg/wire"
)

//go:embed schema/*.yaml
var schemaFiles embed.FS

// SchemaFS returns the embedded schema documents, rooted at the directory
// holding the YAML files.
func SchemaFS() fs.FS {
	sub, err := fs.Sub(schemaFiles, "schema")
	if err != nil {
		panic(err)
	}
	return sub
}

// Protocol bundles the immutable lookup structures built from a schema.
type Protocol struct {
	Bundle *schema.Bundle
	Table  *model.Table
	Enums  *enum.Registry
	Codec  *wire.Codec
}

// Load builds a Protocol from the schema documents in dir of fsys.
func Load(fsys fs.FS, dir string) (*Protocol, error) {
	b, err := schema.LoadFS(fsys, dir)
	if err != nil {
		return nil, err
	}
	table, enums, err := model.Build(b)
	if err != nil {
		return nil, err
	}
	return &Protocol{
		Bundle: b,
		Table:  table,
		Enums:  enums,
		Codec:  wire.NewCodec(table),
	}, nil
}

// Default returns the Protocol for the embedded schema. It is built on first
// use and shared afterwards.
var Default = sync.OnceValues(func() (*Protocol, error) {
	p, err := Load(SchemaFS(), ".")
	if err != nil {
		return nil, fmt.Errorf("built-in schema: %w", err)
	}
	return p, nil
})

// MustDefault is Default for callers that cannot continue without the
// built-in schema.
func MustDefault() *Protocol {
	p, err := Default()
	if err != nil {
		panic(err)
	}
	return p
}

func resolveEnum(kind string, v int32) enum.Variant {
	return MustDefault().Enums.Resolve(kind, v)
}

// enumArg converts a decoded enum argument to its generated type. Undeclared
// wire values carry the UNKNOWN sentinel and map to the type's Unknown
// constant.
func enumArg[T ~int32](v wire.Value) T {
	if v.Kind() == wire.KindEnum {
		return T(v.Variant().Value)
	}
	return T(v.Int())
}

// checkCommand verifies that cmd has the identity and arity a generated
// decoder expects.
func checkCommand(cmd *wire.Command, id model.CommandID, args int) error {
	if cmd == nil {
		return fmt.Errorf("%w: nil command", wire.ErrArgumentMismatch)
	}
	if cmd.ID != id {
		return fmt.Errorf("%w: command %s decoded as %s", wire.ErrArgumentMismatch, cmd.ID, id)
	}
	if len(cmd.Args) != args {
		return fmt.Errorf("%w: %s has %d arguments, want %d", wire.ErrArgumentMismatch, id, len(cmd.Args), args)
	}
	return nil
}
