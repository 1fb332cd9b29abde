package http

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-preamble/internal/fastparser"
	"github.com/shapestone/shape-preamble/internal/parser"
)

// ParseRequest parses a request-line and header list from buf.
//
// On Complete(n) the tokens in req borrow buf and n is the offset of the
// first body byte. On Incomplete or error req.Method, req.Target and
// req.Version are nil and req.Headers holds only the fields it had before
// the call. The caller retries with a longer buffer after Incomplete.
func ParseRequest(buf []byte, req *Request) (Status, error) {
	return fastparser.ParseRequest(buf, req)
}

// ParseResponse parses a status-line and header list from buf.
// See ParseRequest for the outcome rules.
func ParseResponse(buf []byte, resp *Response) (Status, error) {
	return fastparser.ParseResponse(buf, resp)
}

// ParseHeaders parses a header list terminated by a blank line and appends
// the fields to dst.
func ParseHeaders(buf []byte, dst Headers) (Headers, Status, error) {
	return fastparser.ParseHeaders(buf, dst)
}

// NewParser returns a parser over buf. Parsing again after Incomplete
// takes p.Reset(buf) with the grown buffer.
func NewParser(buf []byte) *Parser {
	return fastparser.NewParser(buf)
}

// Parse parses an HTTP preamble into an AST from a string.
//
// The input is a complete preamble (request or response); anything after
// the blank line is ignored. Returns an ast.ObjectNode with properties
// matching the message type.
//
// For requests:
//
//	{ "type": "request", "method": "GET", "target": "/api",
//	  "version": "1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "length": 42 }
//
// For responses:
//
//	{ "type": "response", "version": "1.1", "statusCode": 200,
//	  "reason": "OK",
//	  "headers": [{"key": "Content-Type", "value": "text/plain"}, ...],
//	  "length": 38 }
func Parse(input string) (ast.SchemaNode, error) {
	p := parser.NewParser([]byte(input))
	return p.Parse()
}

// ParseReader reads all data from r and parses it as an HTTP preamble into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	p := parser.NewParser(data)
	return p.Parse()
}
