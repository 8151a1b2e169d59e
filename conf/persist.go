package conf

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/vectype/vectype/errors"
)

// Save writes cfg to path as TOML. Used by `vectype init` to seed a
// project's vectype.toml; refuses to overwrite an existing file.
func Save(cfg Config, path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf("%s already exists", path)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
