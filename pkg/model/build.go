package model

import (
	"fmt"

	"github.com/dronecmd/dronecmd-go/pkg/enum"
	"github.com/dronecmd/dronecmd-go/pkg/schema"
)

// EnumKind returns the registry kind of a feature-local enum.
func EnumKind(feature, name string) string {
	return feature + "." + name
}

// Build turns a validated schema bundle into a command table and the enum
// registry its arguments reference. Shared enums are registered under their
// bare name; feature enums under "feature.Name".
func Build(b *schema.Bundle) (*Table, *enum.Registry, error) {
	if err := schema.Validate(b); err != nil {
		return nil, nil, err
	}

	shared := make(map[string]*enum.Enum)
	var all []*enum.Enum
	if b.Shared != nil {
		for i := range b.Shared.Enums {
			def := &b.Shared.Enums[i]
			e, err := enum.FromSchema(def.Name, def)
			if err != nil {
				return nil, nil, err
			}
			shared[def.Name] = e
			all = append(all, e)
		}
	}

	var (
		features []*FeatureDescriptor
		commands []*CommandDescriptor
	)
	for _, fdef := range b.Features {
		local := make(map[string]*enum.Enum, len(fdef.Enums))
		for i := range fdef.Enums {
			def := &fdef.Enums[i]
			e, err := enum.FromSchema(EnumKind(fdef.Name, def.Name), def)
			if err != nil {
				return nil, nil, err
			}
			local[def.Name] = e
			all = append(all, e)
		}
		lookupEnum := func(name string) *enum.Enum {
			if e, ok := local[name]; ok {
				return e
			}
			return shared[name]
		}

		fd := &FeatureDescriptor{
			ID:          fdef.ID,
			Name:        fdef.Name,
			Description: fdef.Description,
			HasClasses:  fdef.HasClasses(),
			Classes:     make(map[uint8]string, len(fdef.Classes)),
		}
		features = append(features, fd)

		if !fd.HasClasses {
			for i := range fdef.Commands {
				cd, err := buildCommand(fd, "", 0, &fdef.Commands[i], lookupEnum)
				if err != nil {
					return nil, nil, err
				}
				commands = append(commands, cd)
			}
			continue
		}
		for _, cls := range fdef.Classes {
			fd.Classes[cls.ID] = cls.Name
			for i := range cls.Commands {
				cd, err := buildCommand(fd, cls.Name, cls.ID, &cls.Commands[i], lookupEnum)
				if err != nil {
					return nil, nil, err
				}
				commands = append(commands, cd)
			}
		}
	}

	registry, err := enum.NewRegistry(all...)
	if err != nil {
		return nil, nil, err
	}
	table, err := NewTable(features, commands)
	if err != nil {
		return nil, nil, err
	}
	return table, registry, nil
}

func buildCommand(fd *FeatureDescriptor, class string, classID uint8, def *schema.CommandDef, lookupEnum func(string) *enum.Enum) (*CommandDescriptor, error) {
	buffer, err := parseBuffer(def.Buffer)
	if err != nil {
		return nil, fmt.Errorf("command %s: %w", def.Name, err)
	}
	cd := &CommandDescriptor{
		ID:          CommandID{Feature: fd.ID, Class: classID, Command: def.ID},
		Feature:     fd,
		Class:       class,
		Name:        def.Name,
		Description: def.Description,
		Deprecated:  def.Deprecated,
		Buffer:      buffer,
		Args:        make([]ArgDescriptor, 0, len(def.Args)),
	}

	positions := make(map[string]int, len(def.Args))
	for i, a := range def.Args {
		ad, err := buildArg(i, a, lookupEnum)
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", cd.FullName(), err)
		}
		cd.Args = append(cd.Args, ad)
		positions[a.Name] = i
	}

	if s := def.Setting; s != nil {
		binding := &SettingBinding{Name: s.Name, Min: -1, Max: -1}
		if s.Current != "" {
			binding.Current = positions[s.Current]
		}
		if s.Min != "" && s.Max != "" {
			binding.Min = positions[s.Min]
			binding.Max = positions[s.Max]
		}
		cd.Setting = binding
	}
	return cd, nil
}

func buildArg(pos int, a schema.ArgDef, lookupEnum func(string) *enum.Enum) (ArgDescriptor, error) {
	t, err := ParseArgType(a.Type)
	if err != nil {
		return ArgDescriptor{}, fmt.Errorf("argument %s: %w", a.Name, err)
	}
	ad := ArgDescriptor{Name: a.Name, Type: t, Position: pos, Description: a.Description}

	switch t {
	case TypeEnum:
		ad.Enum = lookupEnum(a.Enum)
		if ad.Enum == nil {
			return ArgDescriptor{}, fmt.Errorf("argument %s: unknown enum %s", a.Name, a.Enum)
		}
		if ad.Base, err = ParseArgType(ad.Enum.Width()); err != nil {
			return ArgDescriptor{}, fmt.Errorf("argument %s: %w", a.Name, err)
		}
	case TypeBitfield:
		bits := a.Bits
		if bits == "" {
			bits = "u32"
		}
		if ad.Base, err = ParseArgType(bits); err != nil {
			return ArgDescriptor{}, fmt.Errorf("argument %s: %w", a.Name, err)
		}
		if a.Enum != "" {
			ad.Enum = lookupEnum(a.Enum)
		}
	}
	return ad, nil
}
