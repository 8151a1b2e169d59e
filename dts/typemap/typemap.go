// Package typemap converts documented source-type tokens into TypeScript
// type strings under a strictness policy.
//
// The documented vocabulary is closed: class-family names, the quat4 legacy
// synonym, the Array/Function/Object/Type markers, the primitive keywords,
// and inline structural literals. Everything else falls back to the no-value
// type; documentation incompleteness is expected and recoverable.
package typemap

import (
	"fmt"
	"strings"

	"github.com/vectype/vectype/dts"
)

// Kind classifies a documented type token. The resolver switches
// exhaustively over these variants; there is no string special-casing
// outside Classify.
type Kind int

const (
	// KindNone is an unrecognized token; it resolves to the no-value type.
	KindNone Kind = iota
	// KindClass is a class-family name (vec2 ... quat, or the quat4 synonym).
	KindClass
	// KindPrimitive is a primitive keyword (String/Number/Boolean, their
	// lowercase forms, the buffer type, or the no-value type itself).
	KindPrimitive
	// KindArrayOf is the Array marker or an already-suffixed array type.
	KindArrayOf
	// KindFunction is the Function marker; it synthesizes a callback type.
	KindFunction
	// KindGeneric is the Object/Type marker; it resolves to the open
	// generic parameter.
	KindGeneric
	// KindStructural is an inline structural literal ({...}); it passes
	// through unchanged.
	KindStructural
)

// quatLegacy is the pre-1.0 name for the quaternion type. It maps to quat
// in every mode.
const quatLegacy = "quat4"

// decomposeMethod omits its @returns tag in the analyzed sources but always
// produces an array of components. Its return type is forced array-valued
// regardless of the harvested documentation.
const decomposeMethod = "decompose"

// primitives maps documentation keywords to their TypeScript equivalents.
// Lowercase forms map to themselves so resolution is idempotent.
var primitives = map[string]string{
	"String":     "string",
	"Number":     "number",
	"Boolean":    "boolean",
	"string":     "string",
	"number":     "number",
	"boolean":    "boolean",
	dts.TypeVoid: dts.TypeVoid,
}

// Resolved is the outcome of mapping one token.
type Resolved struct {
	// Type is the TypeScript type string.
	Type string
	// Generic is true when Type references the open generic parameter.
	Generic bool
}

// Classify assigns a token its vocabulary variant.
func Classify(token string, opts dts.Options) Kind {
	token = normalize(token)
	switch {
	case token == "":
		return KindNone
	case strings.HasPrefix(token, "{") && strings.HasSuffix(token, "}"):
		return KindStructural
	case strings.HasSuffix(token, "[]"):
		return KindArrayOf
	case token == "Array":
		return KindArrayOf
	case token == "Function":
		return KindFunction
	case token == "Object" || token == "Type":
		return KindGeneric
	case opts.IsClass(token):
		return KindClass
	case token == opts.BufferType || token == dts.TypeGeneric:
		// Outputs of earlier resolutions classify back to themselves.
		if token == dts.TypeGeneric {
			return KindGeneric
		}
		return KindPrimitive
	default:
		if _, ok := primitives[token]; ok {
			return KindPrimitive
		}
		return KindNone
	}
}

// Resolve maps a documented type token to its TypeScript type for a
// parameter of enclosingClass. Pure: the result depends only on the
// arguments, and resolving a primitive or class result a second time
// returns it unchanged. The array suffix is applied at most once; callers
// must not re-apply it.
func Resolve(token, enclosingClass string, opts dts.Options) Resolved {
	token = normalize(token)
	switch Classify(token, opts) {
	case KindStructural:
		return Resolved{Type: token}
	case KindClass:
		return Resolved{Type: resolveClass(token, opts)}
	case KindPrimitive:
		if t, ok := primitives[token]; ok {
			return Resolved{Type: t}
		}
		return Resolved{Type: token}
	case KindArrayOf:
		if token != "Array" {
			// Already array-valued; resolving again must not re-suffix.
			return Resolved{Type: token}
		}
		return Resolved{Type: resolveClass(enclosingClass, opts) + "[]"}
	case KindFunction:
		c := resolveClass(enclosingClass, opts)
		return Resolved{
			Type:    fmt.Sprintf("(a: %s, b: %s, arg: %s) => %s", c, c, dts.TypeGeneric, dts.TypeVoid),
			Generic: true,
		}
	case KindGeneric:
		return Resolved{Type: dts.TypeGeneric, Generic: true}
	case KindNone:
		return Resolved{Type: dts.TypeVoid}
	default:
		return Resolved{Type: dts.TypeVoid}
	}
}

// ResolveReturn maps a documented return-type token for method on
// enclosingClass. Identical to Resolve except for the decompose carve-out,
// which forces an array-valued result over every other rule.
func ResolveReturn(token, enclosingClass, method string, opts dts.Options) Resolved {
	if method == decomposeMethod {
		return Resolved{Type: resolveClass(enclosingClass, opts) + "[]"}
	}
	return Resolve(token, enclosingClass, opts)
}

// resolveClass maps a class-family name under the strictness policy: the
// nominal name in strict mode, the shared buffer type in loose mode. The
// same substitution applies when another rule targets a class name.
func resolveClass(name string, opts dts.Options) string {
	name = normalize(name)
	if opts.Strict {
		return name
	}
	return opts.BufferType
}

// normalize trims whitespace and rewrites the quat4 legacy synonym.
func normalize(token string) string {
	token = strings.TrimSpace(token)
	if token == quatLegacy {
		return "quat"
	}
	return token
}
