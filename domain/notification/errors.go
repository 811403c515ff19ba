package notification

import "errors"

var ErrNotFound = errors.New("not found")
