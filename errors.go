package saynumber

import "github.com/projectdiscovery/utils/errkit"

var (
	// ErrOutOfRange is returned when an integer argument is outside the
	// domain of the called function (latin prefix of 0, scale name for 4 zeros, ...)
	ErrOutOfRange = errkit.New("number out of range")
	// ErrInvalidConfig is returned for contradicting or ambiguous generation settings
	ErrInvalidConfig = errkit.New("invalid configuration")
	// ErrInvalidNumeral is returned when the input is not a non-empty string of decimal digits
	ErrInvalidNumeral = errkit.New("invalid numeral")
)
