package refs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissing marks a reference whose target cannot be located.
// Resolution contexts return errors wrapping ErrMissing when a
// demanded location does not exist yet; anything else is fatal.
var ErrMissing = errors.New("missing reference")

// MissingError reports reference expressions that could not be
// interpolated, each named verbatim.
type MissingError struct {
	Refs []string
}

func (e *MissingError) Error() string {
	quoted := make([]string, len(e.Refs))
	for i, r := range e.Refs {
		quoted[i] = "${" + r + "}"
	}
	return fmt.Sprintf("could not interpolate the following references: %s",
		strings.Join(quoted, ", "))
}

func (e *MissingError) Unwrap() error {
	return ErrMissing
}

// NewMissingError builds a MissingError with duplicate references
// collapsed, keeping first-occurrence order.
func NewMissingError(refs []string) *MissingError {
	return &MissingError{Refs: dedup(refs)}
}
