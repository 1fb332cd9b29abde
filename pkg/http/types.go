// Package http provides a zero-copy, incremental HTTP/1.1 preamble parser.
//
// A preamble is the request-line or status-line plus the header list, up to
// and including the blank line. The body is never read: a Complete status
// carries the offset at which it would start.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each function call creates its own parser instance with no shared mutable state.
// Decoder and Encoder values are not safe for concurrent use.
//
// # Parsing APIs
//
// The package provides multiple parsing paths:
//
//   - ParseRequest/ParseResponse/ParseHeaders - zero-copy incremental parsing
//   - Unmarshal/UnmarshalRequest/UnmarshalResponse - owned copies of a whole preamble
//   - Parse/ParseReader - AST-based parsing via shape-core
//   - NewDecoder - streaming io.Reader-based parsing
//   - Lex - lexical tokens via shape-core
package http

import (
	"strconv"
	"strings"

	"github.com/shapestone/shape-preamble/internal/fastparser"
)

// Request is a parsed request preamble. Method, Target and Version borrow
// the input buffer; Version holds the "D.D" digits after "HTTP/".
type Request = fastparser.Request

// Response is a parsed status-line plus headers, borrowing the input buffer.
type Response = fastparser.Response

// HeaderField is one borrowed "name: value" pair. Value is trimmed of
// surrounding spaces and tabs.
type HeaderField = fastparser.HeaderField

// Headers is the caller-supplied container the parser appends fields to.
type Headers = fastparser.Headers

// Status is the outcome of a successful parse: Incomplete or Complete(n).
type Status = fastparser.Status

// Parser scans one buffer at a time. Reset moves it to a new or grown buffer.
type Parser = fastparser.Parser

// Incomplete means the input is a valid prefix of a preamble.
var Incomplete = fastparser.Incomplete

// Complete returns the status of a preamble that ends after n bytes.
func Complete(n int) Status { return fastparser.Complete(n) }

// Header is an owned header key-value pair.
type Header = fastparser.Header

// HeaderList is an ordered, repeatable list of owned headers.
// Names are case-insensitive but the original case is preserved.
type HeaderList []Header

// OwnedRequest is a request preamble that no longer references the input buffer.
type OwnedRequest struct {
	Method  string     `json:"method"`  // "GET", "POST", etc.
	Target  string     `json:"target"`  // request-target "/api/users?q=foo"
	Version string     `json:"version"` // "1.1"
	Headers HeaderList `json:"headers"` // ordered, repeatable headers
}

// OwnedResponse is a status-line plus headers that no longer references the input buffer.
type OwnedResponse struct {
	Version    string     `json:"version"`    // "1.1"
	StatusCode int        `json:"statusCode"` // 200, 404, etc.
	Reason     string     `json:"reason"`     // "OK", "Not Found"
	Headers    HeaderList `json:"headers"`    // ordered, repeatable headers
}

// Get returns the first header value for the given key (case-insensitive).
// Returns empty string if not found.
func (h HeaderList) Get(key string) string {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return hdr.Value
		}
	}
	return ""
}

// Values returns all header values for the given key (case-insensitive).
func (h HeaderList) Values(key string) []string {
	var vals []string
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			vals = append(vals, hdr.Value)
		}
	}
	return vals
}

// Set replaces the first header with the given key (case-insensitive) or appends if not found.
func (h *HeaderList) Set(key, value string) {
	for i, hdr := range *h {
		if strings.EqualFold(hdr.Key, key) {
			(*h)[i].Value = value
			// drop later duplicates
			j := i + 1
			for j < len(*h) {
				if strings.EqualFold((*h)[j].Key, key) {
					*h = append((*h)[:j], (*h)[j+1:]...)
				} else {
					j++
				}
			}
			return
		}
	}
	*h = append(*h, Header{Key: key, Value: value})
}

// Add appends a header without replacing existing ones.
func (h *HeaderList) Add(key, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// Del removes all headers with the given key (case-insensitive).
func (h *HeaderList) Del(key string) {
	j := 0
	for _, hdr := range *h {
		if !strings.EqualFold(hdr.Key, key) {
			(*h)[j] = hdr
			j++
		}
	}
	*h = (*h)[:j]
}

// Clone returns a deep copy of the headers.
func (h HeaderList) Clone() HeaderList {
	if h == nil {
		return nil
	}
	clone := make(HeaderList, len(h))
	copy(clone, h)
	return clone
}

// ContentLength returns the Content-Length header value, or -1 if absent or invalid.
// The body itself is never read by this package; callers use this to size it.
func (h HeaderList) ContentLength() int64 {
	v := h.Get("Content-Length")
	if v == "" {
		return -1
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// Marshaler is the interface implemented by types that can marshal themselves
// into a valid HTTP preamble.
type Marshaler interface {
	MarshalHTTP() ([]byte, error)
}

// Unmarshaler is the interface implemented by types that can unmarshal
// an HTTP preamble describing themselves.
type Unmarshaler interface {
	UnmarshalHTTP([]byte) error
}
