package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dronecmd/dronecmd-go/pkg/schema"
)

// Header starts every generated file.
const Header = "// Code generated by dronecmd-gen. DO NOT EDIT.\n"

// Generator renders Go bindings for a schema bundle. Type names are
// computed once over the whole bundle so collisions between features are
// resolved consistently.
type Generator struct {
	bundle  *schema.Bundle
	pkg     string
	names   map[*schema.CommandDef]string
	enumTyp map[string]string // "feature.Enum" or shared "Enum" -> Go type
}

// NewGenerator prepares a generator for bundle.
func NewGenerator(b *schema.Bundle, pkg string) *Generator {
	g := &Generator{
		bundle:  b,
		pkg:     pkg,
		names:   make(map[*schema.CommandDef]string),
		enumTyp: make(map[string]string),
	}
	if b.Shared != nil {
		for _, e := range b.Shared.Enums {
			g.enumTyp[e.Name] = goName(e.Name)
		}
	}
	for _, f := range b.Features {
		for _, e := range f.Enums {
			g.enumTyp[f.Name+"."+e.Name] = goName(f.Name) + goName(e.Name)
		}
	}
	g.assignCommandNames()
	return g
}

// assignCommandNames names command structs after their class, or after the
// feature for features without classes. Names used more than once get the
// feature prefix; a name still clashing with an enum type gets "Cmd".
func (g *Generator) assignCommandNames() {
	enumNames := make(map[string]bool, len(g.enumTyp))
	for _, n := range g.enumTyp {
		enumNames[n] = true
	}

	type entry struct {
		feature string
		def     *schema.CommandDef
		base    string
	}
	var entries []entry
	count := make(map[string]int)
	for _, f := range g.bundle.Features {
		if f.HasClasses() {
			for ci := range f.Classes {
				c := &f.Classes[ci]
				for i := range c.Commands {
					base := goName(c.Name) + goName(c.Commands[i].Name)
					entries = append(entries, entry{f.Name, &c.Commands[i], base})
					count[base]++
				}
			}
			continue
		}
		for i := range f.Commands {
			base := goName(f.Name) + goName(f.Commands[i].Name)
			entries = append(entries, entry{f.Name, &f.Commands[i], base})
			count[base]++
		}
	}

	for _, e := range entries {
		name := e.base
		if count[name] > 1 && !strings.HasPrefix(name, goName(e.feature)) {
			name = goName(e.feature) + name
		}
		if enumNames[name] {
			name += "Cmd"
		}
		g.names[e.def] = name
	}
}

// CommandTypeName returns the struct name generated for def.
func (g *Generator) CommandTypeName(def *schema.CommandDef) string {
	return g.names[def]
}

// GenerateShared renders the shared enums.
func (g *Generator) GenerateShared() (string, error) {
	var b strings.Builder
	b.WriteString(Header)
	fmt.Fprintf(&b, "\npackage %s\n\n", g.pkg)
	b.WriteString(enumImports)

	enums, err := g.enumData("", g.bundle.Shared.Enums)
	if err != nil {
		return "", err
	}
	renderTemplate(&b, "enums", enums)
	return b.String(), nil
}

// GenerateFeature renders the enums, identities and command bindings of f.
func (g *Generator) GenerateFeature(f *schema.FeatureDef) (string, error) {
	data, err := g.featureData(f)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(Header)
	fmt.Fprintf(&b, "\npackage %s\n\n", g.pkg)
	if len(data.Commands) > 0 {
		b.WriteString(featureImports)
	} else if len(data.Enums) > 0 {
		b.WriteString(enumImports)
	}
	renderTemplate(&b, "featureID", data)
	renderTemplate(&b, "enums", data.Enums)
	renderTemplate(&b, "commandIDs", data)
	for _, c := range data.Commands {
		renderTemplate(&b, "command", c)
	}
	return b.String(), nil
}

const enumImports = `import "github.com/dronecmd/dronecmd-go/pkg/enum"

`

const featureImports = `import (
"github.com/dronecmd/dronecmd-go/pkg/dispatch"
"github.com/dronecmd/dronecmd-go/pkg/enum"
"github.com/dronecmd/dronecmd-go/pkg/model"
"github.com/dronecmd/dronecmd-go/pkg/wire"
)

`

// --- Template data ---

type featureData struct {
	Name        string
	GoName      string
	ID          uint8
	Description string
	Enums       []enumData
	Commands    []commandData
}

type enumData struct {
	TypeName    string
	Kind        string
	Description string
	Bitfield    bool
	Values      []enumValueData
}

type enumValueData struct {
	ConstName string
	Name      string
	Value     int64
}

type commandData struct {
	TypeName    string
	FullName    string
	Feature     string
	ClassID     uint8
	ID          uint16
	Description string
	Deprecated  bool
	Fields      []fieldData
}

type fieldData struct {
	Name   string
	GoType string
	Decode string
	Encode string
}

func (g *Generator) featureData(f *schema.FeatureDef) (*featureData, error) {
	enums, err := g.enumData(f.Name, f.Enums)
	if err != nil {
		return nil, err
	}
	data := &featureData{
		Name:        f.Name,
		GoName:      goName(f.Name),
		ID:          f.ID,
		Description: sentence(f.Description),
		Enums:       enums,
	}

	add := func(class string, classID uint8, defs []schema.CommandDef) error {
		for i := range defs {
			c, err := g.commandData(f, class, classID, &defs[i])
			if err != nil {
				return err
			}
			data.Commands = append(data.Commands, c)
		}
		return nil
	}
	if f.HasClasses() {
		for _, c := range f.Classes {
			if err := add(c.Name, c.ID, c.Commands); err != nil {
				return nil, err
			}
		}
	} else if err := add("", 0, f.Commands); err != nil {
		return nil, err
	}
	return data, nil
}

func (g *Generator) enumData(feature string, defs []schema.EnumDef) ([]enumData, error) {
	out := make([]enumData, 0, len(defs))
	for _, def := range defs {
		kind := def.Name
		if feature != "" {
			kind = feature + "." + def.Name
		}
		e := enumData{
			TypeName:    g.enumTyp[kind],
			Kind:        kind,
			Description: sentence(def.Description),
			Bitfield:    def.Bitfield,
		}
		seen := map[string]string{e.TypeName + "Unknown": "UNKNOWN"}
		for _, v := range def.Values {
			if v.Name == schema.EnumMaxName {
				continue
			}
			constName := e.TypeName + valueName(v.Name)
			if prev, ok := seen[constName]; ok {
				return nil, fmt.Errorf("enum %s: value %s collides with %s as %s", kind, v.Name, prev, constName)
			}
			seen[constName] = v.Name
			e.Values = append(e.Values, enumValueData{
				ConstName: constName,
				Name:      v.Name,
				Value:     v.Value,
			})
		}
		sort.SliceStable(e.Values, func(i, j int) bool { return e.Values[i].Value < e.Values[j].Value })
		out = append(out, e)
	}
	return out, nil
}

func (g *Generator) commandData(f *schema.FeatureDef, class string, classID uint8, def *schema.CommandDef) (commandData, error) {
	full := f.Name + "." + def.Name
	if class != "" {
		full = f.Name + "." + class + "." + def.Name
	}
	c := commandData{
		TypeName:    g.names[def],
		FullName:    full,
		Feature:     goName(f.Name),
		ClassID:     classID,
		ID:          def.ID,
		Description: sentence(def.Description),
		Deprecated:  def.Deprecated,
	}
	for i, a := range def.Args {
		fd, err := g.field(f, i, a)
		if err != nil {
			return c, fmt.Errorf("%s: %w", full, err)
		}
		c.Fields = append(c.Fields, fd)
	}
	return c, nil
}

// intTypes maps schema integer names to Go types.
var intTypes = map[string]string{
	"i8": "int8", "i16": "int16", "i32": "int32", "i64": "int64",
	"u8": "uint8", "u16": "uint16", "u32": "uint32", "u64": "uint64",
}

func (g *Generator) field(f *schema.FeatureDef, pos int, a schema.ArgDef) (fieldData, error) {
	fd := fieldData{Name: goName(a.Name)}
	arg := fmt.Sprintf("cmd.Args[%d]", pos)
	src := "c." + fd.Name

	switch a.Type {
	case "float":
		fd.GoType = "float32"
		fd.Decode = "float32(" + arg + ".Float())"
		fd.Encode = "wire.Float32(" + src + ")"
	case "double":
		fd.GoType = "float64"
		fd.Decode = arg + ".Float()"
		fd.Encode = "wire.Float64(" + src + ")"
	case "string":
		fd.GoType = "string"
		fd.Decode = arg + ".Text()"
		fd.Encode = "wire.Str(" + src + ")"
	case "enum":
		typ := g.lookupEnumType(f, a.Enum)
		if typ == "" {
			return fd, fmt.Errorf("argument %s: unknown enum %s", a.Name, a.Enum)
		}
		fd.GoType = typ
		fd.Decode = "enumArg[" + typ + "](" + arg + ")"
		fd.Encode = "wire.EnumValue(" + src + ".Variant())"
	case "bitfield":
		bits := a.Bits
		if bits == "" {
			bits = "u32"
		}
		fd.GoType = intTypes[bits]
		fd.Decode = castInt(fd.GoType, arg+".Uint()")
		fd.Encode = "wire.Bits(uint64(" + src + "))"
	default:
		typ, ok := intTypes[a.Type]
		if !ok {
			return fd, fmt.Errorf("argument %s: unsupported type %q", a.Name, a.Type)
		}
		fd.GoType = typ
		if strings.HasPrefix(typ, "u") {
			fd.Decode = castInt(typ, arg+".Uint()")
		} else {
			fd.Decode = castInt(typ, arg+".Int()")
		}
		fd.Encode = "wire." + goName(typ) + "(" + src + ")"
	}
	return fd, nil
}

func (g *Generator) lookupEnumType(f *schema.FeatureDef, name string) string {
	if typ, ok := g.enumTyp[f.Name+"."+name]; ok {
		return typ
	}
	return g.enumTyp[name]
}

func castInt(typ, expr string) string {
	if typ == "int64" || typ == "uint64" {
		return expr
	}
	return typ + "(" + expr + ")"
}
