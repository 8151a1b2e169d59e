package dts

// TypeVoid is the "no value" type: the default return type and the fallback
// for documentation tokens outside the registered vocabulary.
const TypeVoid = "void"

// TypeGeneric is the open generic type parameter introduced by Object/Type
// documentation tags.
const TypeGeneric = "T"

// DefaultBufferType is the shared numeric-buffer type that class-family
// names collapse to in loose mode.
const DefaultBufferType = "Float32Array"

// DefaultClasses is the class vocabulary in processing order. quat comes
// last: its alias declarations reference vec3 and vec4 methods, and a class
// may only alias into classes that completed their first registry pass.
var DefaultClasses = []string{"vec2", "vec3", "vec4", "mat2", "mat2d", "mat3", "mat4", "quat"}

// Options carries the per-run generation settings. It is threaded explicitly
// through every component so repeated or concurrent runs with different
// settings cannot interfere.
type Options struct {
	// Strict preserves nominal class-family types. When false (loose mode)
	// every class-family type collapses to BufferType.
	Strict bool

	// EmitDocs re-emits each declaration's JSDoc block above it.
	EmitDocs bool

	// BufferType is the shared numeric-buffer type name, Float32Array unless
	// overridden in configuration.
	BufferType string

	// Classes is the class vocabulary in processing order.
	Classes []string
}

// DefaultOptions returns loose-mode options with documentation emission on.
func DefaultOptions() Options {
	return Options{
		Strict:     false,
		EmitDocs:   true,
		BufferType: DefaultBufferType,
		Classes:    append([]string(nil), DefaultClasses...),
	}
}

// IsClass reports whether name is part of the class vocabulary. The legacy
// quat4 synonym is not a vocabulary member; typemap normalizes it to quat
// before classification.
func (o Options) IsClass(name string) bool {
	for _, c := range o.Classes {
		if c == name {
			return true
		}
	}
	return false
}
