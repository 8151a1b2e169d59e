// Package emit runs the extraction pipeline over a source tree and
// assembles the final TypeScript declaration document.
package emit

import (
	"strings"

	"github.com/vectype/vectype/dts"
	"github.com/vectype/vectype/dts/extract"
	"github.com/vectype/vectype/dts/registry"
	"github.com/vectype/vectype/dts/render"
	"github.com/vectype/vectype/errors"
	"github.com/vectype/vectype/logger"
	"github.com/vectype/vectype/source"
)

// Generate reads every class module under srcDir and returns the assembled
// declaration document. Pass 1 (extraction and registration) completes for
// all classes before any class's pass 2 (alias resolution and rendering)
// begins.
func Generate(srcDir string, opts dts.Options) (string, error) {
	modules, err := source.Load(srcDir, opts)
	if err != nil {
		return "", err
	}

	reg := registry.New()
	for _, mod := range modules {
		sigs, err := extract.Module(mod.Text, opts)
		if err != nil {
			return "", errors.Wrapf(err, "extraction failed for %s", mod.Path)
		}
		logger.Infow("Extracted signatures", "class", mod.Class, "count", len(sigs))
		reg.RegisterPass(mod.Class, sigs)
	}

	return Document(reg, source.LibraryVersion(srcDir), opts)
}

// Document resolves every registered class and assembles the declaration
// file: header, then one interface block per class in registration order.
func Document(reg *registry.Registry, version string, opts dts.Options) (string, error) {
	var sb strings.Builder
	sb.WriteString(Header(version))

	for _, class := range reg.Classes() {
		sigs, err := reg.Resolve(class)
		if err != nil {
			return "", err
		}
		sb.WriteString("\n")
		sb.WriteString(interfaceBlock(class, sigs, opts))
	}
	return sb.String(), nil
}

// Header returns the generated-file banner. The Source line carries
// run-dependent metadata and is ignored by up-to-date checks.
func Header(version string) string {
	var sb strings.Builder
	sb.WriteString("// Code generated by vectype from JavaScript source. DO NOT EDIT.\n")
	if version != "" {
		sb.WriteString("// Source: " + version + "\n")
	}
	return sb.String()
}

// interfaceBlock renders one class's declarations. Strict mode anchors the
// interface to the nominal buffer base type, which is what makes the
// strict-incompatible members collide.
func interfaceBlock(class string, sigs []*dts.Signature, opts dts.Options) string {
	var sb strings.Builder
	if opts.Strict {
		sb.WriteString("interface " + class + " extends " + opts.BufferType + " {\n")
	} else {
		sb.WriteString("interface " + class + " {\n")
	}
	for _, sig := range sigs {
		sb.WriteString(render.Declaration(sig, opts))
	}
	sb.WriteString("}\n")
	return sb.String()
}
