package language

import "errors"

var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidRule         = errors.New("invalid recurrence rule")
	ErrUnsupportedRule     = errors.New("recurrence rule cannot be described")
)
