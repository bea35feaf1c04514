package octree

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Config describes optional tuning and expectations for a Linear octree.
type Config struct {
	// Levels, if set, must match the depth of the code type the tree is built over.
	Levels int `json:"levels,omitempty"`
	// Prealloc is a capacity hint for the expected number of leaves.
	Prealloc int `json:"prealloc,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	var err error
	if cfg.Levels < 0 {
		err = multierr.Append(err, newConfigValidationError(path, "levels", "must be non-negative"))
	}
	if cfg.Prealloc < 0 {
		err = multierr.Append(err, newConfigValidationError(path, "prealloc", "must be non-negative"))
	}
	return err
}

func newConfigValidationError(path, field, reason string) error {
	return errors.Errorf("%s: %q %s", path, field, reason)
}
