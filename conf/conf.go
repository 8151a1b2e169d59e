// Package conf loads vectype configuration from defaults, a vectype.toml
// discovered by walking up from the working directory, and VECTYPE_*
// environment variables, in increasing precedence. Command-line flags are
// applied on top by the CLI layer.
package conf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/vectype/vectype/dts"
	"github.com/vectype/vectype/errors"
)

// ConfigFileName is the project configuration file vectype looks for.
const ConfigFileName = "vectype.toml"

// Config holds the per-run settings.
type Config struct {
	// Strict preserves nominal class-family types in the output.
	Strict bool `mapstructure:"strict" toml:"strict"`

	// Docs re-emits each declaration's JSDoc block.
	Docs bool `mapstructure:"docs" toml:"docs"`

	// BufferType is the shared numeric-buffer type for loose mode.
	BufferType string `mapstructure:"buffer_type" toml:"buffer_type"`

	// Classes is the class vocabulary in processing order.
	Classes []string `mapstructure:"classes" toml:"classes"`

	// Source is the directory holding the analyzed <class>.js modules.
	Source string `mapstructure:"source" toml:"source"`

	// Output is the declaration file to write; empty means stdout.
	Output string `mapstructure:"output" toml:"output"`
}

// Options converts the configuration into the per-run options threaded
// through the generation pipeline.
func (c Config) Options() dts.Options {
	return dts.Options{
		Strict:     c.Strict,
		EmitDocs:   c.Docs,
		BufferType: c.BufferType,
		Classes:    append([]string(nil), c.Classes...),
	}
}

// Load reads configuration from all sources.
func Load() (Config, error) {
	return LoadWithViper(newViper())
}

// LoadFromFile reads configuration from a specific file, on top of
// defaults.
func LoadFromFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals configuration from a prepared Viper instance.
func LoadWithViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal config")
	}
	return cfg, nil
}

// newViper builds a Viper instance with env binding, defaults, and the
// discovered project config merged in.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("VECTYPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		// Discovery is best effort; a missing or broken file falls back to
		// defaults and env.
		_ = v.MergeInConfig()
	}
	return v
}

// findProjectConfig walks up from the working directory looking for
// vectype.toml. Returns "" when none is found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
