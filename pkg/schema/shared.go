package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SharedFile is the file name LoadDir treats as shared type definitions.
const SharedFile = "shared.yaml"

// SharedTypes represents enums shared between features.
type SharedTypes struct {
	Version string    `yaml:"version"`
	Enums   []EnumDef `yaml:"enums"`
}

// ParseSharedTypes parses shared type definitions from YAML bytes.
func ParseSharedTypes(data []byte) (*SharedTypes, error) {
	var shared SharedTypes
	if err := yaml.Unmarshal(data, &shared); err != nil {
		return nil, fmt.Errorf("parsing shared types: %w", err)
	}
	return &shared, nil
}

// LoadSharedTypes loads and parses shared types from a file.
func LoadSharedTypes(path string) (*SharedTypes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseSharedTypes(data)
}

// FindEnum returns the shared enum with the given name.
func (s *SharedTypes) FindEnum(name string) *EnumDef {
	if s == nil {
		return nil
	}
	for i := range s.Enums {
		if s.Enums[i].Name == name {
			return &s.Enums[i]
		}
	}
	return nil
}
