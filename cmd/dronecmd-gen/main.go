// Command dronecmd-gen renders typed Go bindings from a schema directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/dronecmd/dronecmd-go/pkg/schema"
)

func main() {
	schemaDir := flag.String("schema", "", "Directory holding feature YAMLs and shared.yaml")
	outputDir := flag.String("output", "", "Output directory for generated Go files")
	pkgName := flag.String("package", "features", "Package name of the generated files")
	flag.Parse()

	if *schemaDir == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: dronecmd-gen -schema <dir> -output <dir> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*schemaDir, *outputDir, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(schemaDir, outputDir, pkgName string) error {
	bundle, err := schema.LoadDir(schemaDir)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	g := NewGenerator(bundle, pkgName)

	if bundle.Shared != nil && len(bundle.Shared.Enums) > 0 {
		code, err := g.GenerateShared()
		if err != nil {
			return fmt.Errorf("generating shared enums: %w", err)
		}
		outPath := filepath.Join(outputDir, "shared_gen.go")
		if err := writeFormatted(outPath, code); err != nil {
			return fmt.Errorf("writing shared_gen.go: %w", err)
		}
		fmt.Printf("  generated %s\n", outPath)
	}

	for _, def := range bundle.Features {
		code, err := g.GenerateFeature(def)
		if err != nil {
			return fmt.Errorf("generating feature %s: %w", def.Name, err)
		}
		outFileName := fileName(def.Name) + "_gen.go"
		outPath := filepath.Join(outputDir, outFileName)
		if err := writeFormatted(outPath, code); err != nil {
			return fmt.Errorf("writing %s: %w", outFileName, err)
		}
		fmt.Printf("  generated %s\n", outPath)
	}
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Keep the raw output around for debugging the templates.
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
