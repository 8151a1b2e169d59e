// Package render formats resolved signatures as TypeScript interface
// members.
package render

import (
	"strings"

	"github.com/vectype/vectype/dts"
)

// memberIndent is the indentation of an interface member.
const memberIndent = "    "

// strictIncompatible lists the methods that are structurally incompatible
// with the numeric-buffer base type under strict mode: the bulk setter, the
// length accessor, and the per-element-callback iterator all collide with a
// member of the same name on the base type. They are emitted commented-out
// rather than omitted, so the documented API surface stays visible.
var strictIncompatible = map[string]bool{
	"set":     true,
	"length":  true,
	"forEach": true,
}

// Declaration renders one resolved signature as an interface member,
// optionally preceded by its re-indented documentation block.
func Declaration(sig *dts.Signature, opts dts.Options) string {
	var sb strings.Builder

	if opts.EmitDocs && strings.TrimSpace(sig.Doc) != "" {
		sb.WriteString(reindentDoc(sig.Doc))
	}

	decl := declarationLine(sig)
	if opts.Strict && strictIncompatible[sig.Method] {
		sb.WriteString(memberIndent + "// Disabled under strict mode: collides with the " +
			opts.BufferType + " member of the same name.\n")
		sb.WriteString(memberIndent + "// " + decl + "\n")
		return sb.String()
	}

	sb.WriteString(memberIndent + decl + "\n")
	return sb.String()
}

// declarationLine builds the member line: name, generic marker when any
// resolved type is the open generic parameter, parameter list, return type.
func declarationLine(sig *dts.Signature) string {
	var sb strings.Builder
	sb.WriteString(sig.Method)
	if isGeneric(sig) {
		sb.WriteString("<" + dts.TypeGeneric + ">")
	}
	sb.WriteString("(")
	for i, name := range sig.ParamNames {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name + ": " + sig.ParamTypes[i])
	}
	sb.WriteString("): " + sig.ReturnType + ";")
	return sb.String()
}

// isGeneric reports whether the signature references the open generic
// parameter, either via the resolution flag or directly in a resolved type.
func isGeneric(sig *dts.Signature) bool {
	if sig.Generic {
		return true
	}
	if sig.ReturnType == dts.TypeGeneric {
		return true
	}
	for _, t := range sig.ParamTypes {
		if t == dts.TypeGeneric {
			return true
		}
	}
	return false
}

// reindentDoc re-emits the original documentation block at member
// indentation. Content is preserved verbatim; only leading whitespace is
// normalized.
func reindentDoc(doc string) string {
	var sb strings.Builder
	sb.WriteString(memberIndent + "/**\n")
	for _, line := range strings.Split(strings.Trim(doc, "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "*" {
			sb.WriteString(memberIndent + " *\n")
			continue
		}
		if !strings.HasPrefix(line, "*") {
			line = "* " + line
		}
		sb.WriteString(memberIndent + " " + line + "\n")
	}
	sb.WriteString(memberIndent + " */\n")
	return sb.String()
}
