package deviceopts

import "errors"

var (
	// ErrUnknownFamily reports a family name that does not match any
	// supported controller family.
	ErrUnknownFamily = errors.New("unknown controller family")
	// ErrUnknownField reports a tunable name the family does not expose.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidValue reports text that does not parse as the tunable's type.
	ErrInvalidValue = errors.New("invalid value")
)
