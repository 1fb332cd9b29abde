package http

import (
	"bytes"
	"io"
)

// Validate checks that input starts with a syntactically valid HTTP/1.1
// preamble. It parses the start line and all headers; bytes after the blank
// line are not inspected.
// Returns nil if valid, a *ParseError describing the problem, or
// ErrIncomplete if input is only a valid prefix.
func Validate(input string) error {
	return validate([]byte(input))
}

// ValidateReader reads all data from r and validates it as an HTTP/1.1 preamble.
// See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return validate(data)
}

func validate(data []byte) error {
	var st Status
	var err error
	if isResponse(data) {
		var resp Response
		st, err = ParseResponse(data, &resp)
	} else {
		var req Request
		st, err = ParseRequest(data, &req)
	}
	if err != nil {
		return err
	}
	if st.IsIncomplete() {
		return ErrIncomplete
	}
	return nil
}

func isResponse(data []byte) bool {
	return bytes.HasPrefix(data, []byte("HTTP/"))
}

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
