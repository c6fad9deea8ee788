package render

import "errors"

var ErrInvalidSize = errors.New("render: surface dimensions must be positive")
