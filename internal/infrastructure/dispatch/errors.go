package dispatch

import "errors"

// ErrInvalidConfig indicates an invalid queue configuration.
var ErrInvalidConfig = errors.New("dispatch: invalid configuration")
