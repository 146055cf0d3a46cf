package app

import "errors"

var (
	ErrEmptyDocument   = errors.New("document is empty")
	ErrInvalidDocument = errors.New("document is not a readable PDF")
)
