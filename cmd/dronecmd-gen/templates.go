package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"firstLower": firstLower,
	"quote":      func(s string) string { return fmt.Sprintf("%q", s) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	featureIDTmpl +
		enumsTmpl +
		commandIDsTmpl +
		commandTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

const featureIDTmpl = `{{define "featureID"}}
{{- if .Description}}
// {{.GoName}}FeatureID identifies the {{.Name}} feature: {{.Description}}.
{{- else}}
// {{.GoName}}FeatureID identifies the {{.Name}} feature.
{{- end}}
const {{.GoName}}FeatureID uint8 = {{.ID}}

{{end}}`

const enumsTmpl = `{{define "enums"}}
{{- range .}}
{{- $typeName := .TypeName}}
{{- if .Description}}
// {{$typeName}} is {{firstLower .Description}}.
{{- else}}
// {{$typeName}} is the {{.Kind}} enum.
{{- end}}
type {{$typeName}} int32

const (
{{- range .Values}}
{{.ConstName}} {{$typeName}} = {{.Value}}
{{- end}}

// {{$typeName}}Unknown stands for values this schema does not declare.
{{$typeName}}Unknown {{$typeName}} = {{$typeName}}(enum.UnknownValue)
)

// String returns the schema name of v.
func (v {{$typeName}}) String() string {
switch v {
{{- range .Values}}
case {{.ConstName}}:
return {{quote .Name}}
{{- end}}
default:
return enum.UnknownName
}
}

// Known reports whether v is declared by the schema.
func (v {{$typeName}}) Known() bool {
{{- if .Values}}
switch v {
case {{range $i, $v := .Values}}{{if $i}}, {{end}}{{$v.ConstName}}{{end}}:
return true
}
{{- end}}
return false
}

// Variant resolves v against the {{.Kind}} enum.
func (v {{$typeName}}) Variant() enum.Variant {
return resolveEnum({{quote .Kind}}, int32(v))
}

// Description returns the schema documentation of v.
func (v {{$typeName}}) Description() string {
return enum.Describe(v.Variant())
}
{{- if .Bitfield}}

// Bit returns the mask bit of v.
func (v {{$typeName}}) Bit() uint64 {
if v < 0 || v > 63 {
return 0
}
return 1 << uint(v)
}
{{- end}}

{{end}}
{{- end}}`

const commandIDsTmpl = `{{define "commandIDs"}}
{{- if .Commands}}
// {{.Name}} command identities.
var (
{{- range .Commands}}
{{.TypeName}}ID = model.CommandID{Feature: {{.Feature}}FeatureID, Class: {{.ClassID}}, Command: {{.ID}}}
{{- end}}
)

{{end}}
{{- end}}`

const commandTmpl = `{{define "command"}}
{{- if .Description}}
// {{.TypeName}} is {{.FullName}}: {{.Description}}.
{{- else}}
// {{.TypeName}} is {{.FullName}}.
{{- end}}
{{- if .Deprecated}}
//
// Deprecated: {{.FullName}} is kept for older peers.
{{- end}}
{{- if .Fields}}
type {{.TypeName}} struct {
{{- range .Fields}}
{{.Name}} {{.GoType}}
{{- end}}
}
{{- else}}
type {{.TypeName}} struct{}
{{- end}}

// Command returns the wire form of c.
func (c *{{.TypeName}}) Command() *wire.Command {
{{- if .Fields}}
return &wire.Command{
ID: {{.TypeName}}ID,
Args: []wire.Value{
{{- range .Fields}}
{{.Encode}},
{{- end}}
},
}
{{- else}}
return &wire.Command{ID: {{.TypeName}}ID}
{{- end}}
}

// Decode{{.TypeName}} converts a decoded {{.FullName}}.
func Decode{{.TypeName}}(cmd *wire.Command) (*{{.TypeName}}, error) {
if err := checkCommand(cmd, {{.TypeName}}ID, {{len .Fields}}); err != nil {
return nil, err
}
{{- if .Fields}}
return &{{.TypeName}}{
{{- range .Fields}}
{{.Name}}: {{.Decode}},
{{- end}}
}, nil
{{- else}}
return &{{.TypeName}}{}, nil
{{- end}}
}

// On{{.TypeName}} registers fn for {{.FullName}}.
func On{{.TypeName}}(d *dispatch.Dispatcher, fn func(*{{.TypeName}}) error) dispatch.Listener {
return d.Register({{.TypeName}}ID, dispatch.ListenerFunc(func(cmd *wire.Command) error {
c, err := Decode{{.TypeName}}(cmd)
if err != nil {
return err
}
return fn(c)
}))
}

{{end}}`
