package octree

import (
	"github.com/pkg/errors"
)

// NewCodeDepthError is returned when a code type cannot hold its own digits.
func NewCodeDepthError(levels, bits int) error {
	return errors.Errorf("code type with %d levels needs %d bits but only has %d", levels, 3*levels, bits)
}

// NewLevelMismatchError is returned when the configured depth differs from the code type's depth.
func NewLevelMismatchError(expected, actual int) error {
	return errors.Errorf("configured for %d levels but code type has %d", expected, actual)
}

// newConsistencyError describes a broken tree invariant. These are never returned; the tree
// panics with them because they can only be caused by a faulty code type.
func newConsistencyError(format string, args ...interface{}) error {
	return errors.Wrap(errors.Errorf(format, args...), "octree consistency violation")
}
