package fastparser

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrorKind names the grammar position at which parsing failed.
type ErrorKind uint8

const (
	InvalidMethod ErrorKind = iota + 1
	InvalidPath
	InvalidVersion
	InvalidStatusCode
	InvalidReasonPhrase
	InvalidFieldName
	InvalidFieldValue
	InvalidNewLine
)

var kindNames = [...]string{
	InvalidMethod:       "invalid method",
	InvalidPath:         "invalid path",
	InvalidVersion:      "invalid version",
	InvalidStatusCode:   "invalid status code",
	InvalidReasonPhrase: "invalid reason phrase",
	InvalidFieldName:    "invalid field name",
	InvalidFieldValue:   "invalid field value",
	InvalidNewLine:      "invalid new line",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// ParseError reports the first illegal byte or malformed element of a preamble.
type ParseError struct {
	Kind   ErrorKind
	Offset int // byte offset of the offending byte in the input
	Line   int // 1-indexed line of Offset (0 for the sentinels)
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("http: parse error at line %d: %s", e.Line, e.Kind)
	}
	return "http: " + e.Kind.String()
}

// Is matches any ParseError of the same kind, so errors.Is(err, ErrInvalidMethod)
// holds regardless of position.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidMethod       = &ParseError{Kind: InvalidMethod}
	ErrInvalidPath         = &ParseError{Kind: InvalidPath}
	ErrInvalidVersion      = &ParseError{Kind: InvalidVersion}
	ErrInvalidStatusCode   = &ParseError{Kind: InvalidStatusCode}
	ErrInvalidReasonPhrase = &ParseError{Kind: InvalidReasonPhrase}
	ErrInvalidFieldName    = &ParseError{Kind: InvalidFieldName}
	ErrInvalidFieldValue   = &ParseError{Kind: InvalidFieldValue}
	ErrInvalidNewLine      = &ParseError{Kind: InvalidNewLine}
)

// KindOf returns the kind of a parse error anywhere in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

// errNeedMore is internal: it never leaves the package, the exported functions
// turn it into Incomplete.
var errNeedMore = errors.New("http: need more data")

func newParseError(data []byte, kind ErrorKind, offset int) *ParseError {
	return &ParseError{
		Kind:   kind,
		Offset: offset,
		Line:   bytes.Count(data[:offset], []byte{'\n'}) + 1,
	}
}

// ErrIncomplete is returned by the whole-message helpers (Validate, the AST
// parser, Unmarshal) when the input is a valid prefix only. The streaming
// functions report Incomplete as a Status instead.
var ErrIncomplete = errors.New("http: incomplete message")
