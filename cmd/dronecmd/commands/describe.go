package commands

import (
	"fmt"
	"io"

	"github.com/dronecmd/dronecmd-go/pkg/features"
	"github.com/dronecmd/dronecmd-go/pkg/model"
)

// DescribeOptions selects what RunDescribe prints.
type DescribeOptions struct {
	// Feature restricts output to one feature. Empty lists all.
	Feature string

	// Enums also lists the enums the feature declares.
	Enums bool
}

// RunDescribe prints the descriptor table.
func RunDescribe(p *features.Protocol, opts DescribeOptions, w io.Writer) error {
	feats := p.Table.Features()
	if opts.Feature != "" {
		f, ok := p.Table.FeatureByName(opts.Feature)
		if !ok {
			return fmt.Errorf("unknown feature: %s", opts.Feature)
		}
		feats = []*model.FeatureDescriptor{f}
	}

	for _, f := range feats {
		describeFeature(w, p, f, opts.Enums)
	}
	return nil
}

func describeFeature(w io.Writer, p *features.Protocol, f *model.FeatureDescriptor, enums bool) {
	fmt.Fprintf(w, "%s (%d)", f.Name, f.ID)
	if f.Description != "" {
		fmt.Fprintf(w, ": %s", f.Description)
	}
	fmt.Fprintln(w)

	for _, desc := range p.Table.FeatureCommands(f.ID) {
		name := desc.Name
		if desc.Class != "" {
			name = desc.Class + "." + desc.Name
		}
		fmt.Fprintf(w, "  %-44s [%s] %s", name, desc.ID, desc.Buffer)
		if size, variable := desc.FixedSize(); variable {
			fmt.Fprintf(w, " %d+ bytes", size)
		} else {
			fmt.Fprintf(w, " %d bytes", size)
		}
		if desc.Deprecated {
			fmt.Fprint(w, " deprecated")
		}
		if desc.Setting != nil {
			fmt.Fprintf(w, " setting=%s", desc.Setting.Name)
		}
		fmt.Fprintln(w)
		for i := range desc.Args {
			fmt.Fprintf(w, "      %-24s %s\n", desc.Args[i].Name, argType(&desc.Args[i]))
		}
	}

	if enums {
		prefix := f.Name + "."
		for _, kind := range p.Enums.Kinds() {
			if len(kind) <= len(prefix) || kind[:len(prefix)] != prefix {
				continue
			}
			e, _ := p.Enums.Enum(kind)
			label := "enum"
			if e.Bitfield() {
				label = "bitfield"
			}
			fmt.Fprintf(w, "  %s %s (%s)\n", label, kind, e.Width())
			for _, v := range e.Values() {
				fmt.Fprintf(w, "      %-24s %d\n", v.Name, v.Value)
			}
		}
	}
	fmt.Fprintln(w)
}

func argType(a *model.ArgDescriptor) string {
	switch a.Type {
	case model.TypeEnum:
		return fmt.Sprintf("enum %s (%s)", a.Enum.Kind(), a.Base)
	case model.TypeBitfield:
		if a.Enum != nil {
			return fmt.Sprintf("bitfield %s (%s)", a.Enum.Kind(), a.Base)
		}
		return fmt.Sprintf("bitfield (%s)", a.Base)
	}
	return a.Type.String()
}
