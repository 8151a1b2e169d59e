// Package source reads the analyzed library's module files and resolves
// version metadata for the generated header.
package source

import (
	"os"
	"path/filepath"

	"github.com/vectype/vectype/dts"
	"github.com/vectype/vectype/errors"
)

// Module is one class's raw source text.
type Module struct {
	Class string
	Path  string
	Text  string
}

// Load reads one <class>.js file per vocabulary class from dir, in
// processing order. Every class file must exist: the vocabulary is closed
// and known ahead of time, so a missing module means the wrong directory
// was pointed at.
func Load(dir string, opts dts.Options) ([]Module, error) {
	modules := make([]Module, 0, len(opts.Classes))
	for _, class := range opts.Classes {
		path := filepath.Join(dir, class+".js")
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read module for class %s", class)
		}
		modules = append(modules, Module{Class: class, Path: path, Text: string(text)})
	}
	return modules, nil
}
