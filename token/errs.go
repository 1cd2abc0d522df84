package token

import "errors"

var (
	ErrUnterminated = errors.New("unterminated quote")
	ErrBadEscape    = errors.New("bad escape")
)
