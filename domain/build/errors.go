package build

import "errors"

var (
	ErrInvalidResult  = errors.New("invalid build result")
	ErrInvalidContext = errors.New("invalid build context")
)
