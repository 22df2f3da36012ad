package validation

import "errors"

var (
	ErrEmptyClassName      = errors.New("class name is required")
	ErrClassNameTooLong    = errors.New("class name exceeds maximum length")
	ErrInvalidClassName    = errors.New("class name contains control characters")
	ErrRetentionOutOfRange = errors.New("retention minutes out of range")
	ErrEmptyKey            = errors.New("custom data key is required")
	ErrKeyTooLong          = errors.New("custom data key exceeds maximum length")
	ErrInvalidValue        = errors.New("custom data value is not valid json")
	ErrValueTooLarge       = errors.New("custom data value exceeds maximum size")
)
