package ir

import "errors"

var (
	ErrNotEncodable = errors.New("value has no literal encoding")
)
