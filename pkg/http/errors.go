package http

import (
	"errors"

	"github.com/shapestone/shape-preamble/internal/fastparser"
)

// ErrorKind names the grammar position at which parsing failed.
type ErrorKind = fastparser.ErrorKind

// ParseError is returned for malformed input. Offset is the byte position of
// the offending byte, Line its 1-indexed line.
type ParseError = fastparser.ParseError

const (
	InvalidMethod       = fastparser.InvalidMethod
	InvalidPath         = fastparser.InvalidPath
	InvalidVersion      = fastparser.InvalidVersion
	InvalidStatusCode   = fastparser.InvalidStatusCode
	InvalidReasonPhrase = fastparser.InvalidReasonPhrase
	InvalidFieldName    = fastparser.InvalidFieldName
	InvalidFieldValue   = fastparser.InvalidFieldValue
	InvalidNewLine      = fastparser.InvalidNewLine
)

// Sentinels for errors.Is. Any *ParseError of the same kind matches.
var (
	ErrInvalidMethod       = fastparser.ErrInvalidMethod
	ErrInvalidPath         = fastparser.ErrInvalidPath
	ErrInvalidVersion      = fastparser.ErrInvalidVersion
	ErrInvalidStatusCode   = fastparser.ErrInvalidStatusCode
	ErrInvalidReasonPhrase = fastparser.ErrInvalidReasonPhrase
	ErrInvalidFieldName    = fastparser.ErrInvalidFieldName
	ErrInvalidFieldValue   = fastparser.ErrInvalidFieldValue
	ErrInvalidNewLine      = fastparser.ErrInvalidNewLine
)

// ErrIncomplete is returned by whole-message helpers when the input ends
// before the blank line that closes the preamble.
var ErrIncomplete = fastparser.ErrIncomplete

// ErrHeaderTooLarge is returned by a Decoder whose buffer reached
// MaxHeaderBytes without a complete preamble.
var ErrHeaderTooLarge = errors.New("http: header too large")

// KindOf returns the kind of a parse error anywhere in err's chain, or 0.
func KindOf(err error) ErrorKind {
	return fastparser.KindOf(err)
}
