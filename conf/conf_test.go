package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectype/vectype/dts"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Strict)
	assert.True(t, cfg.Docs)
	assert.Equal(t, dts.DefaultBufferType, cfg.BufferType)
	assert.Equal(t, dts.DefaultClasses, cfg.Classes)
	assert.Equal(t, "src", cfg.Source)
	assert.Empty(t, cfg.Output)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dts.DefaultBufferType, cfg.BufferType)
	assert.Len(t, cfg.Classes, 8)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `strict = true
buffer_type = "Float64Array"
classes = ["vec2", "vec3"]
source = "lib"
output = "dist/gl-matrix.d.ts"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "Float64Array", cfg.BufferType)
	assert.Equal(t, []string{"vec2", "vec3"}, cfg.Classes)
	assert.Equal(t, "lib", cfg.Source)
	assert.Equal(t, "dist/gl-matrix.d.ts", cfg.Output)
	// Keys absent from the file keep their defaults.
	assert.True(t, cfg.Docs)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Strict = true
	cfg.Docs = false
	cfg.BufferType = "Float64Array"

	opts := cfg.Options()
	assert.True(t, opts.Strict)
	assert.False(t, opts.EmitDocs)
	assert.Equal(t, "Float64Array", opts.BufferType)
	assert.Equal(t, cfg.Classes, opts.Classes)

	// Options holds its own copy of the class list.
	opts.Classes[0] = "changed"
	assert.Equal(t, "vec2", cfg.Classes[0])
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := Default()
	cfg.Strict = true
	cfg.Output = "types/gl-matrix.d.ts"
	require.NoError(t, Save(cfg, path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("strict = true\n"), 0o644))

	err := Save(Default(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
