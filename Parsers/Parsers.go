package Parsers

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrSyntax is wrapped by a ParseError when the input isn't a number.
	ErrSyntax = errors.New("invalid syntax")
	// ErrRange is wrapped by a ParseError when the number doesn't fit an int64.
	ErrRange = errors.New("value out of range")
)

// ParseError records a failed StringToInteger. Pos is the offset of the
// rejected byte, or len(Input) when the input ended before any digit.
type ParseError struct {
	Input string
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Err == ErrRange:
		return fmt.Sprintf("%q: %v", e.Input, e.Err)
	case e.Pos < len(e.Input):
		return fmt.Sprintf("'%c' at %d is not a number, %q is invalid", e.Input[e.Pos], e.Pos, e.Input)
	default:
		return fmt.Sprintf("%q has no digits", e.Input)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StringToInteger parses an optional '-' followed by one or more ASCII digits.
// Nothing else is accepted, not even a '+' or surrounding spaces. On failure
// it returns 0 and a *ParseError.
// Time: O(len(text)); Space: O(1)
func StringToInteger(text string) (int64, error) {
	i, limit := 0, uint64(math.MaxInt64)
	if len(text) > 0 && text[0] == '-' {
		i, limit = 1, limit+1
	}
	if i == len(text) {
		return 0, &ParseError{text, i, ErrSyntax}
	}
	var mag uint64
	for ; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return 0, &ParseError{text, i, ErrSyntax}
		}
		d := uint64(c - '0')
		if mag > (limit-d)/10 {
			return 0, &ParseError{text, i, ErrRange}
		}
		mag = mag*10 + d
	}
	if text[0] == '-' {
		return -int64(mag), nil
	}
	return int64(mag), nil
}

// ParseOrZero is StringToInteger for callers that can't handle an error.
// Failures are reported to logger and yield 0, which can't be told apart from
// a parsed "0".
func ParseOrZero(text string, logger logrus.FieldLogger) int64 {
	v, err := StringToInteger(text)
	if err != nil {
		logger.WithError(err).WithField("input", text).Error("input string is invalid, returning 0")
		return 0
	}
	return v
}
