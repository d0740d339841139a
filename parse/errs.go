package parse

import (
	"errors"
	"fmt"
)

var ErrValue = errors.New("malformed value")

// MalformedValueError reports literal text containing reserved
// grammar punctuation that nonetheless failed to parse. Such text is
// more likely a typo than an intentional bareword string.
type MalformedValueError struct {
	Value string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed value: %q", e.Value)
}

func (e *MalformedValueError) Unwrap() error {
	return ErrValue
}
