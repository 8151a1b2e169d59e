// Package dts holds the shared data model for TypeScript declaration
// generation from gl-matrix-style JavaScript sources.
//
// The pipeline is: extract scans one module's raw text for documented
// declarations, typemap resolves the documented types, registry collects
// per-class method maps and resolves aliases, render formats each resolved
// signature, and emit assembles the final declaration file.
package dts

// Signature is one documented declaration recovered from a module's source.
//
// A Signature is created by the extraction engine, enriched once by the type
// mapping engine, stored exactly once in the registry, optionally rewritten
// once during alias resolution, and consumed exactly once by the renderer.
type Signature struct {
	// OwningClass is the class the declaration was found on (e.g. "vec2").
	OwningClass string

	// Doc is the raw JSDoc block text, without the /** */ delimiters.
	// Empty when the declaration carried no usable documentation.
	Doc string

	// Method is the declared identifier.
	Method string

	// IsAlias is true when the declaration body is a bare reference to
	// another class.method rather than a function definition.
	IsAlias bool

	// AliasClass and AliasMethod identify the alias target. Set iff IsAlias.
	AliasClass  string
	AliasMethod string

	// ParamNames and ParamTypes are positionally paired; the two slices are
	// always the same length.
	ParamNames []string
	ParamTypes []string

	// ReturnType is the resolved return type, TypeVoid when undetermined.
	ReturnType string

	// Generic is true when any resolved type referenced the open generic
	// parameter, in which case the renderer prefixes the declaration with
	// the generic marker.
	Generic bool
}

// Clone returns a deep copy. Alias resolution produces new records rather
// than mutating registered ones, so copies must not share slice storage.
func (s *Signature) Clone() *Signature {
	c := *s
	c.ParamNames = append([]string(nil), s.ParamNames...)
	c.ParamTypes = append([]string(nil), s.ParamTypes...)
	return &c
}

// SelfAlias reports whether the signature aliases a method of its own class.
func (s *Signature) SelfAlias() bool {
	return s.IsAlias && s.AliasClass == s.OwningClass
}
