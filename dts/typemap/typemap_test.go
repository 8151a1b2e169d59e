package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectype/vectype/dts"
)

func looseOpts() dts.Options {
	return dts.DefaultOptions()
}

func strictOpts() dts.Options {
	o := dts.DefaultOptions()
	o.Strict = true
	return o
}

func TestResolve_ClassLoose(t *testing.T) {
	r := Resolve("vec2", "vec2", looseOpts())
	assert.Equal(t, "Float32Array", r.Type)
	assert.False(t, r.Generic)
}

func TestResolve_ClassStrict(t *testing.T) {
	r := Resolve("vec2", "vec2", strictOpts())
	assert.Equal(t, "vec2", r.Type)
}

func TestResolve_QuatLegacySynonym(t *testing.T) {
	// quat4 is the pre-1.0 quaternion name; it maps to quat in every mode.
	assert.Equal(t, "quat", Resolve("quat4", "quat", strictOpts()).Type)
	assert.Equal(t, "Float32Array", Resolve("quat4", "quat", looseOpts()).Type)
}

func TestResolve_ArrayMarker(t *testing.T) {
	// The Array marker resolves to an array of the enclosing class's
	// element type.
	assert.Equal(t, "Float32Array[]", Resolve("Array", "mat2", looseOpts()).Type)
	assert.Equal(t, "mat2[]", Resolve("Array", "mat2", strictOpts()).Type)
}

func TestResolve_ArraySuffixAppliedOnce(t *testing.T) {
	// Resolving an already array-valued type must not re-append the suffix.
	first := Resolve("Array", "mat2", looseOpts()).Type
	require.Equal(t, "Float32Array[]", first)
	assert.Equal(t, first, Resolve(first, "mat2", looseOpts()).Type)
}

func TestResolve_FunctionSynthesis(t *testing.T) {
	r := Resolve("Function", "vec3", looseOpts())
	assert.Equal(t, "(a: Float32Array, b: Float32Array, arg: T) => void", r.Type)
	assert.True(t, r.Generic)

	r = Resolve("Function", "vec3", strictOpts())
	assert.Equal(t, "(a: vec3, b: vec3, arg: T) => void", r.Type)
}

func TestResolve_OpenGeneric(t *testing.T) {
	for _, token := range []string{"Object", "Type"} {
		r := Resolve(token, "vec2", looseOpts())
		assert.Equal(t, dts.TypeGeneric, r.Type, "token %s", token)
		assert.True(t, r.Generic, "token %s", token)
	}
}

func TestResolve_Primitives(t *testing.T) {
	tests := map[string]string{
		"String":  "string",
		"Number":  "number",
		"Boolean": "boolean",
	}
	for token, want := range tests {
		assert.Equal(t, want, Resolve(token, "vec2", looseOpts()).Type)
	}
}

func TestResolve_StructuralLiteralPassthrough(t *testing.T) {
	lit := "{upDegrees: number, downDegrees: number}"
	assert.Equal(t, lit, Resolve(lit, "mat4", strictOpts()).Type)
}

func TestResolve_UnknownFallsBackToVoid(t *testing.T) {
	assert.Equal(t, dts.TypeVoid, Resolve("WeakMap", "vec2", looseOpts()).Type)
	assert.Equal(t, dts.TypeVoid, Resolve("", "vec2", looseOpts()).Type)
}

func TestResolveReturn_DecomposeForcedArray(t *testing.T) {
	// decompose omits its @returns tag in the analyzed sources; its return
	// is forced array-valued over every other rule, explicit tags included.
	assert.Equal(t, "Float32Array[]", ResolveReturn("", "mat4", "decompose", looseOpts()).Type)
	assert.Equal(t, "mat4[]", ResolveReturn("Number", "mat4", "decompose", strictOpts()).Type)
}

func TestResolveReturn_DefaultsToVoid(t *testing.T) {
	assert.Equal(t, dts.TypeVoid, ResolveReturn("", "vec2", "add", looseOpts()).Type)
}

func TestResolve_Idempotent(t *testing.T) {
	// Resolving a primitive or class result a second time returns it
	// unchanged, in both modes.
	tokens := []string{"vec2", "vec3", "mat4", "quat", "quat4", "String", "Number", "Boolean", "nonsense"}
	for _, opts := range []dts.Options{looseOpts(), strictOpts()} {
		for _, token := range tokens {
			once := Resolve(token, "vec2", opts).Type
			twice := Resolve(once, "vec2", opts).Type
			assert.Equal(t, once, twice, "token %q strict=%v", token, opts.Strict)
		}
	}
}

func TestResolve_StrictnessInvariant(t *testing.T) {
	// Loose mode never yields the nominal class name; strict mode never
	// yields the shared buffer type.
	for _, class := range dts.DefaultClasses {
		loose := Resolve(class, class, looseOpts()).Type
		assert.NotEqual(t, class, loose, "loose %s", class)

		strict := Resolve(class, class, strictOpts()).Type
		assert.NotEqual(t, dts.DefaultBufferType, strict, "strict %s", class)
	}
}

func TestResolve_CustomBufferType(t *testing.T) {
	opts := looseOpts()
	opts.BufferType = "Float64Array"
	assert.Equal(t, "Float64Array", Resolve("vec2", "vec2", opts).Type)
	assert.Equal(t, "Float64Array", Resolve("Float64Array", "vec2", opts).Type)
}

func TestClassify(t *testing.T) {
	opts := looseOpts()
	tests := []struct {
		token string
		want  Kind
	}{
		{"vec2", KindClass},
		{"quat4", KindClass},
		{"Array", KindArrayOf},
		{"vec2[]", KindArrayOf},
		{"Function", KindFunction},
		{"Object", KindGeneric},
		{"Type", KindGeneric},
		{"Number", KindPrimitive},
		{"Float32Array", KindPrimitive},
		{"{x: number}", KindStructural},
		{"", KindNone},
		{"WeakMap", KindNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.token, opts), "token %q", tt.token)
	}
}
