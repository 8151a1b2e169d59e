package conf

import (
	"github.com/spf13/viper"

	"github.com/vectype/vectype/dts"
)

// SetDefaults registers the default value for every configuration key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("strict", false)
	v.SetDefault("docs", true)
	v.SetDefault("buffer_type", dts.DefaultBufferType)
	v.SetDefault("classes", dts.DefaultClasses)
	v.SetDefault("source", "src")
	v.SetDefault("output", "")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Strict:     false,
		Docs:       true,
		BufferType: dts.DefaultBufferType,
		Classes:    append([]string(nil), dts.DefaultClasses...),
		Source:     "src",
		Output:     "",
	}
}
