package harvest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addDoc = `
 * Adds two vec2's
 *
 * @param {vec2} out the receiving vector
 * @param {vec2} a the first operand
 * @param {vec2} b the second operand
 * @returns {vec2} out
 `

func TestTags_TextualOrder(t *testing.T) {
	tags := Tags(addDoc)
	require.Len(t, tags, 4)

	assert.Equal(t, Tag{Return: false, Type: "vec2"}, tags[0])
	assert.Equal(t, Tag{Return: false, Type: "vec2"}, tags[1])
	assert.Equal(t, Tag{Return: false, Type: "vec2"}, tags[2])
	assert.Equal(t, Tag{Return: true, Type: "vec2"}, tags[3])
}

func TestParamTypes(t *testing.T) {
	assert.Equal(t, []string{"vec2", "vec2", "vec2"}, ParamTypes(addDoc))
}

func TestReturnType(t *testing.T) {
	typ, ok := ReturnType(addDoc)
	require.True(t, ok)
	assert.Equal(t, "vec2", typ)
}

func TestReturnType_Absent(t *testing.T) {
	_, ok := ReturnType(" * @param {vec3} out the receiving vector")
	assert.False(t, ok)
}

func TestReturnType_SingularTag(t *testing.T) {
	typ, ok := ReturnType(" * @return {Number} the dot product")
	require.True(t, ok)
	assert.Equal(t, "Number", typ)
}

func TestTags_Empty(t *testing.T) {
	assert.Empty(t, Tags(" * Sets the type of array used when creating vectors"))
	assert.Empty(t, Tags(""))
}

func TestTags_StructuredParameterShorthand(t *testing.T) {
	doc := ` * Generates a perspective projection matrix from a field of view
 * @param {mat4} out mat4 frustum matrix will be written into
 * @param {Object} fov Object containing the following values: upDegrees, downDegrees, leftDegrees, rightDegrees
 * @param {Number} near Near bound of the frustum
 `
	types := ParamTypes(doc)
	require.Len(t, types, 3)
	assert.Equal(t, "mat4", types[0])
	assert.Equal(t, "{upDegrees: number, downDegrees: number, leftDegrees: number, rightDegrees: number}", types[1])
	assert.Equal(t, "Number", types[2])
}

func TestTags_StructuredShorthandWithAnd(t *testing.T) {
	doc := ` * @param {Object} size containing the following values: width, and height`
	types := ParamTypes(doc)
	require.Len(t, types, 1)
	assert.Equal(t, "{width: number, height: number}", types[0])
}

func TestTags_NoParamCountValidation(t *testing.T) {
	// Correspondence with the declaration is positional; the harvester
	// reports what the block declares, nothing more.
	doc := ` * @param {vec2} out
 * @param {vec2} a`
	assert.Len(t, ParamTypes(doc), 2)
}
