package loc

import "errors"

var ErrMalformedPath = errors.New("malformed path")
