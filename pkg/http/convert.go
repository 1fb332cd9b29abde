package http

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-preamble/internal/fastparser"
	"github.com/shapestone/shape-preamble/internal/parser"
)

// OwnRequest copies a parsed request out of its input buffer. Well-known
// methods, versions and header names are interned.
func OwnRequest(req *Request) *OwnedRequest {
	o := req.Owned()
	return &OwnedRequest{
		Method:  o.Method,
		Target:  o.Target,
		Version: o.Version,
		Headers: convertHeaders(o.Headers),
	}
}

// OwnResponse copies a parsed response out of its input buffer.
func OwnResponse(resp *Response) *OwnedResponse {
	o := resp.Owned()
	return &OwnedResponse{
		Version:    o.Version,
		StatusCode: o.StatusCode,
		Reason:     o.Reason,
		Headers:    convertHeaders(o.Headers),
	}
}

// NodeToRequest converts an AST ObjectNode to an owned request.
func NodeToRequest(node ast.SchemaNode) (*OwnedRequest, error) {
	fpReq, err := parser.NodeToRequest(node)
	if err != nil {
		return nil, err
	}
	return &OwnedRequest{
		Method:  fpReq.Method,
		Target:  fpReq.Target,
		Version: fpReq.Version,
		Headers: convertHeaders(fpReq.Headers),
	}, nil
}

// NodeToResponse converts an AST ObjectNode to an owned response.
func NodeToResponse(node ast.SchemaNode) (*OwnedResponse, error) {
	fpResp, err := parser.NodeToResponse(node)
	if err != nil {
		return nil, err
	}
	return &OwnedResponse{
		Version:    fpResp.Version,
		StatusCode: fpResp.StatusCode,
		Reason:     fpResp.Reason,
		Headers:    convertHeaders(fpResp.Headers),
	}, nil
}

// RequestToNode converts an owned request to an AST ObjectNode. The node has
// no "length" property since an owned request has no input buffer.
func RequestToNode(req *OwnedRequest) ast.SchemaNode {
	return parser.RequestToNode(&fastparser.OwnedRequest{
		Method:  req.Method,
		Target:  req.Target,
		Version: req.Version,
		Headers: req.Headers,
	}, -1)
}

// ResponseToNode converts an owned response to an AST ObjectNode.
func ResponseToNode(resp *OwnedResponse) ast.SchemaNode {
	return parser.ResponseToNode(&fastparser.OwnedResponse{
		Version:    resp.Version,
		StatusCode: resp.StatusCode,
		Reason:     resp.Reason,
		Headers:    resp.Headers,
	}, -1)
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}

func convertHeaders(internal []fastparser.Header) HeaderList {
	if len(internal) == 0 {
		return nil
	}
	return HeaderList(internal)
}
