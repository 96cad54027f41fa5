package form

import "errors"

var (
	ErrUnknownField   = errors.New("unknown field")
	ErrInvalidValue   = errors.New("invalid value")
	ErrDeviceNotFound = errors.New("device not found")
	ErrLumenNotFound  = errors.New("lumen not found")
)
