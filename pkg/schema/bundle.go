package schema

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// Bundle is a complete protocol description: every feature plus the shared
// enums they may reference.
type Bundle struct {
	Features []*FeatureDef
	Shared   *SharedTypes
}

// Feature returns the feature with the given name, or nil.
func (b *Bundle) Feature(name string) *FeatureDef {
	for _, f := range b.Features {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// LoadDir loads every *.yaml file in dir and validates the result.
func LoadDir(dir string) (*Bundle, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS loads every *.yaml file in dir of fsys and validates the result.
// Files are read in lexical order; SharedFile is parsed as shared types.
func LoadFS(fsys fs.FS, dir string) (*Bundle, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading schema dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	b := &Bundle{}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if name == SharedFile {
			if b.Shared, err = ParseSharedTypes(data); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			continue
		}
		def, err := ParseFeatureDef(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		b.Features = append(b.Features, def)
	}

	if len(b.Features) == 0 {
		return nil, fmt.Errorf("no feature definitions in %s", dir)
	}
	if err := Validate(b); err != nil {
		return nil, err
	}
	return b, nil
}
