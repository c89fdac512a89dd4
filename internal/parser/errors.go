package parser

import "errors"

var (
	ErrNilPack         = errors.New("language pack is required")
	ErrNoRecognizer    = errors.New("no date recognizer for language")
	ErrInvalidTimezone = errors.New("invalid timezone")
)
