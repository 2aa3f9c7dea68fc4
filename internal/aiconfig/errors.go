package aiconfig

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid ai config")
)
