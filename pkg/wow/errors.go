package wow

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFlavor indicates an identifier that names no known flavor.
	ErrUnknownFlavor = errors.New("wow: unknown flavor")
)

// UnknownFlavorError carries the identifier that failed to resolve.
type UnknownFlavorError struct {
	Name string
}

func (e *UnknownFlavorError) Error() string {
	return fmt.Sprintf("unknown flavor %q", e.Name)
}

func (e *UnknownFlavorError) Is(target error) bool {
	return target == ErrUnknownFlavor
}

// NewUnknownFlavorError constructs an UnknownFlavorError for the given
// identifier.
func NewUnknownFlavorError(name string) error {
	return &UnknownFlavorError{Name: name}
}

// IsUnknownFlavor reports whether err indicates an unknown flavor identifier.
func IsUnknownFlavor(err error) bool {
	return errors.Is(err, ErrUnknownFlavor)
}
