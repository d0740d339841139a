package token

import (
	"errors"
	"fmt"
)

var (
	ErrToken             = errors.New("unrecognized token")
	ErrNumber            = errors.New("malformed number")
	ErrNumberLeadingZero = errors.New("number has leading zero")
	ErrUnterminated      = errors.New("unterminated quoted string")
	ErrReference         = errors.New("unterminated reference")
)

type TokenizeErr struct {
	Err error
	Pos int
}

func NewTokenizeErr(e error, pos int) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: pos}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Pos)
}
