// Package parser builds shape-core AST nodes (ObjectNode, LiteralNode,
// ArrayDataNode) from a complete HTTP/1.1 preamble.
//
// The preamble is mapped to an ObjectNode with the following structure:
//
// Request:
//
//	{ "type": "request", "method": "POST", "target": "/api",
//	  "version": "1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "length": 42 }
//
// Response:
//
//	{ "type": "response", "version": "1.1", "statusCode": 200,
//	  "reason": "OK",
//	  "headers": [{"key": "Content-Type", "value": "text/plain"}, ...],
//	  "length": 42 }
//
// "length" is the preamble size in bytes; anything after it is not inspected.
package parser

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-preamble/internal/fastparser"
)

var zeroPos = ast.Position{}

// Parser produces AST nodes from HTTP wire-format data.
type Parser struct {
	data []byte
}

// NewParser creates a new AST parser for the given input.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse parses the preamble and returns an AST ObjectNode. Input starting with
// "HTTP/" is parsed as a response. A valid prefix yields fastparser.ErrIncomplete.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	if bytes.HasPrefix(p.data, []byte("HTTP/")) {
		return p.parseResponse()
	}
	return p.parseRequest()
}

func (p *Parser) parseRequest() (ast.SchemaNode, error) {
	var req fastparser.Request
	st, err := fastparser.ParseRequest(p.data, &req)
	if err != nil {
		return nil, err
	}
	if st.IsIncomplete() {
		return nil, fastparser.ErrIncomplete
	}
	return requestToNode(req.Owned(), st.Len()), nil
}

func (p *Parser) parseResponse() (ast.SchemaNode, error) {
	var resp fastparser.Response
	st, err := fastparser.ParseResponse(p.data, &resp)
	if err != nil {
		return nil, err
	}
	if st.IsIncomplete() {
		return nil, fastparser.ErrIncomplete
	}
	return responseToNode(resp.Owned(), st.Len()), nil
}

// RequestToNode converts an owned request to an AST ObjectNode. length is
// omitted from the node when negative.
func RequestToNode(req *fastparser.OwnedRequest, length int) ast.SchemaNode {
	return requestToNode(req, length)
}

// ResponseToNode converts an owned response to an AST ObjectNode.
func ResponseToNode(resp *fastparser.OwnedResponse, length int) ast.SchemaNode {
	return responseToNode(resp, length)
}

func requestToNode(req *fastparser.OwnedRequest, length int) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(req.Method, zeroPos),
		"target":  ast.NewLiteralNode(req.Target, zeroPos),
		"version": ast.NewLiteralNode(req.Version, zeroPos),
		"headers": headersToNode(req.Headers),
	}
	if length >= 0 {
		props["length"] = ast.NewLiteralNode(int64(length), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

func responseToNode(resp *fastparser.OwnedResponse, length int) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":       ast.NewLiteralNode("response", zeroPos),
		"version":    ast.NewLiteralNode(resp.Version, zeroPos),
		"statusCode": ast.NewLiteralNode(int64(resp.StatusCode), zeroPos),
		"reason":     ast.NewLiteralNode(resp.Reason, zeroPos),
		"headers":    headersToNode(resp.Headers),
	}
	if length >= 0 {
		props["length"] = ast.NewLiteralNode(int64(length), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

func headersToNode(headers []fastparser.Header) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(h.Key, zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeType returns the "type" property of an ObjectNode produced by this package.
func NodeType(node ast.SchemaNode) (string, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return "", fmt.Errorf("expected ObjectNode, got %T", node)
	}
	typ, ok := literalString(obj.Properties(), "type")
	if !ok {
		return "", fmt.Errorf("missing or non-string 'type' property")
	}
	return typ, nil
}

// NodeToRequest converts an AST ObjectNode back to an owned request. method,
// target and version must be string literals; headers may be absent.
func NodeToRequest(node ast.SchemaNode) (*fastparser.OwnedRequest, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	req := &fastparser.OwnedRequest{}
	var err error
	if req.Method, err = requiredString(props, "method"); err != nil {
		return nil, err
	}
	if req.Target, err = requiredString(props, "target"); err != nil {
		return nil, err
	}
	if req.Version, err = requiredString(props, "version"); err != nil {
		return nil, err
	}
	if req.Headers, err = optionalHeaders(props); err != nil {
		return nil, err
	}
	return req, nil
}

// NodeToResponse converts an AST ObjectNode back to an owned response.
// statusCode may be an integer, a float or a decimal string.
func NodeToResponse(node ast.SchemaNode) (*fastparser.OwnedResponse, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	resp := &fastparser.OwnedResponse{}
	var err error
	if resp.Version, err = requiredString(props, "version"); err != nil {
		return nil, err
	}
	if resp.StatusCode, err = statusCode(props); err != nil {
		return nil, err
	}
	if resp.Reason, err = requiredString(props, "reason"); err != nil {
		return nil, err
	}
	if resp.Headers, err = optionalHeaders(props); err != nil {
		return nil, err
	}
	return resp, nil
}

func statusCode(props map[string]ast.SchemaNode) (int, error) {
	lit, ok := props["statusCode"].(*ast.LiteralNode)
	if !ok {
		return 0, fmt.Errorf("missing or non-literal 'statusCode' property")
	}
	switch code := lit.Value().(type) {
	case int64:
		return int(code), nil
	case float64:
		if code != float64(int(code)) {
			return 0, fmt.Errorf("non-integer 'statusCode' %v", code)
		}
		return int(code), nil
	case string:
		n, err := strconv.Atoi(code)
		if err != nil {
			return 0, fmt.Errorf("invalid 'statusCode' %q", code)
		}
		return n, nil
	}
	return 0, fmt.Errorf("'statusCode' has type %T", lit.Value())
}

func literalString(props map[string]ast.SchemaNode, key string) (string, bool) {
	v, ok := props[key]
	if !ok {
		return "", false
	}
	lit, ok := v.(*ast.LiteralNode)
	if !ok {
		return "", false
	}
	s, ok := lit.Value().(string)
	return s, ok
}

func requiredString(props map[string]ast.SchemaNode, key string) (string, error) {
	s, ok := literalString(props, key)
	if !ok {
		return "", fmt.Errorf("missing or non-string '%s' property", key)
	}
	return s, nil
}

func optionalHeaders(props map[string]ast.SchemaNode) ([]fastparser.Header, error) {
	v, ok := props["headers"]
	if !ok {
		return nil, nil
	}
	return nodeToHeaders(v)
}

func nodeToHeaders(node ast.SchemaNode) ([]fastparser.Header, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	headers := make([]fastparser.Header, 0, len(elements))
	for i, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			return nil, fmt.Errorf("header %d: expected ObjectNode, got %T", i, elem)
		}
		props := obj.Properties()
		var h fastparser.Header
		var err error
		if h.Key, err = requiredString(props, "key"); err != nil {
			return nil, fmt.Errorf("header %d: %w", i, err)
		}
		if h.Value, err = requiredString(props, "value"); err != nil {
			return nil, fmt.Errorf("header %d: %w", i, err)
		}
		headers = append(headers, h)
	}

	return headers, nil
}
