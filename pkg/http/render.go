package http

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-preamble/internal/parser"
)

// Render converts an AST node (from Parse) back to a wire-format preamble.
//
// The node must be an ObjectNode with a "type" property of "request" or "response",
// as produced by Parse() or ParseReader().
func Render(node ast.SchemaNode) ([]byte, error) {
	msgType, err := parser.NodeType(node)
	if err != nil {
		return nil, fmt.Errorf("http: Render: %w", err)
	}

	switch msgType {
	case "request":
		req, err := NodeToRequest(node)
		if err != nil {
			return nil, fmt.Errorf("http: Render: %w", err)
		}
		return Marshal(req)

	case "response":
		resp, err := NodeToResponse(node)
		if err != nil {
			return nil, fmt.Errorf("http: Render: %w", err)
		}
		return Marshal(resp)

	default:
		return nil, fmt.Errorf("http: Render: unknown message type %q", msgType)
	}
}
