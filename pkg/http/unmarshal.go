package http

import (
	"fmt"
)

// Unmarshal parses an HTTP preamble and stores an owned copy in v.
//
// v must be an *OwnedRequest or *OwnedResponse, or implement Unmarshaler.
// The message type is detected from the "HTTP/" prefix. Incomplete input
// yields ErrIncomplete.
//
// Authentication headers are parsed as ordinary fields and are available
// via Headers.Get:
//
//	req.Headers.Get("Authorization")   // "Bearer eyJhbGci..."
//	req.Headers.Get("X-API-Key")       // "abc123def456"
//
// Query-string keys stay part of the target:
//
//	// GET /api/users?api_key=abc123 HTTP/1.1  →  req.Target = "/api/users?api_key=abc123"
func Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return fmt.Errorf("http: Unmarshal(nil)")
	}

	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalHTTP(data)
	}

	isResp := isResponse(data)

	switch target := v.(type) {
	case *OwnedRequest:
		if isResp {
			return fmt.Errorf("http: data appears to be a response but target is *OwnedRequest")
		}
		return unmarshalRequest(data, target)

	case *OwnedResponse:
		if !isResp {
			return fmt.Errorf("http: data appears to be a request but target is *OwnedResponse")
		}
		return unmarshalResponse(data, target)

	default:
		return fmt.Errorf("http: Unmarshal unsupported type %T (expected *OwnedRequest or *OwnedResponse)", v)
	}
}

// UnmarshalRequest parses a request preamble into an owned copy.
func UnmarshalRequest(data []byte) (*OwnedRequest, error) {
	req := &OwnedRequest{}
	if err := unmarshalRequest(data, req); err != nil {
		return nil, err
	}
	return req, nil
}

// UnmarshalResponse parses a response preamble into an owned copy.
func UnmarshalResponse(data []byte) (*OwnedResponse, error) {
	resp := &OwnedResponse{}
	if err := unmarshalResponse(data, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DetectMessageType returns "request" or "response" based on the data prefix.
// Data starting with "HTTP/" is detected as a response; everything else as a request.
func DetectMessageType(data []byte) string {
	if isResponse(data) {
		return "response"
	}
	return "request"
}

func unmarshalRequest(data []byte, target *OwnedRequest) error {
	var req Request
	st, err := ParseRequest(data, &req)
	if err != nil {
		return err
	}
	if st.IsIncomplete() {
		return ErrIncomplete
	}
	*target = *OwnRequest(&req)
	return nil
}

func unmarshalResponse(data []byte, target *OwnedResponse) error {
	var resp Response
	st, err := ParseResponse(data, &resp)
	if err != nil {
		return err
	}
	if st.IsIncomplete() {
		return ErrIncomplete
	}
	*target = *OwnResponse(&resp)
	return nil
}
