package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FeatureDef represents a feature definition loaded from YAML.
type FeatureDef struct {
	Name        string       `yaml:"name"`
	ID          uint8        `yaml:"id"`
	Description string       `yaml:"description"`
	Enums       []EnumDef    `yaml:"enums"`
	Classes     []ClassDef   `yaml:"classes"`
	Commands    []CommandDef `yaml:"commands"` // single-class features only
}

// HasClasses reports whether the feature carries a class byte on the wire.
func (f *FeatureDef) HasClasses() bool {
	return len(f.Classes) > 0
}

// EnumDef represents an enum type definition.
type EnumDef struct {
	Name        string      `yaml:"name"`
	Type        string      `yaml:"type"` // wire width, defaults to "i32"
	Bitfield    bool        `yaml:"bitfield"`
	Description string      `yaml:"description"`
	Values      []EnumValue `yaml:"values"`
}

// EnumValue represents a single enum value.
type EnumValue struct {
	Name        string `yaml:"name"`
	Value       int64  `yaml:"value"`
	Description string `yaml:"description"`
}

// ClassDef groups commands of a multi-class feature.
type ClassDef struct {
	Name        string       `yaml:"name"`
	ID          uint8        `yaml:"id"`
	Description string       `yaml:"description"`
	Commands    []CommandDef `yaml:"commands"`
}

// CommandDef represents a command definition.
type CommandDef struct {
	Name        string      `yaml:"name"`
	ID          uint16      `yaml:"id"`
	Description string      `yaml:"description"`
	Deprecated  bool        `yaml:"deprecated"`
	Buffer      string      `yaml:"buffer"` // "ack" (default), "nonack", "high"
	Args        []ArgDef    `yaml:"args"`
	Setting     *SettingDef `yaml:"setting"`
}

// ArgDef represents one positional command argument.
type ArgDef struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"` // "u8", "i32", "float", "double", "string", "enum", "bitfield", ...
	Enum        string `yaml:"enum"` // enum reference for "enum", bit enum for "bitfield"
	Bits        string `yaml:"bits"` // unsigned width of a bitfield, defaults to "u32"
	Description string `yaml:"description"`
}

// SettingDef binds a "changed" notification to a settings aggregate field.
// Current, Min and Max name arguments of the command; Current defaults to
// the first argument.
type SettingDef struct {
	Name    string `yaml:"name"`
	Current string `yaml:"current"`
	Min     string `yaml:"min"`
	Max     string `yaml:"max"`
}

// ParseFeatureDef parses a feature definition from YAML bytes.
func ParseFeatureDef(data []byte) (*FeatureDef, error) {
	var def FeatureDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing feature def: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("feature definition missing name")
	}
	return &def, nil
}

// LoadFeatureDef loads and parses a feature definition from a file.
func LoadFeatureDef(path string) (*FeatureDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseFeatureDef(data)
}

// FindEnum returns the feature-local enum with the given name.
func (f *FeatureDef) FindEnum(name string) *EnumDef {
	for i := range f.Enums {
		if f.Enums[i].Name == name {
			return &f.Enums[i]
		}
	}
	return nil
}
