package http

import (
	"errors"
	"strings"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestParseRequest(t *testing.T) {
	buf := []byte("GET /index.html HTTP/1.1\r\nHost: example.com\r\n\r\nbody")

	var req Request
	st, err := ParseRequest(buf, &req)
	if err != nil {
		t.Fatalf("ParseRequest() error = %v", err)
	}
	if st != Complete(len(buf)-len("body")) {
		t.Errorf("status = %v, want Complete(%d)", st, len(buf)-len("body"))
	}
	if string(req.Method) != "GET" || string(req.Target) != "/index.html" || string(req.Version) != "1.1" {
		t.Errorf("request line = %q %q %q", req.Method, req.Target, req.Version)
	}
	if string(buf[st.Len():]) != "body" {
		t.Errorf("body offset points at %q", buf[st.Len():])
	}
}

func TestParseRequest_IncrementalFeed(t *testing.T) {
	full := "POST /submit HTTP/1.1\r\nHost: example.com\r\nContent-Length: 3\r\n\r\n"

	var req Request
	for i := 0; i < len(full); i++ {
		st, err := ParseRequest([]byte(full[:i]), &req)
		if err != nil {
			t.Fatalf("prefix %d: error = %v", i, err)
		}
		if st != Incomplete {
			t.Fatalf("prefix %d: status = %v, want Incomplete", i, st)
		}
		if req.Method != nil || len(req.Headers) != 0 {
			t.Fatalf("prefix %d: partial tokens leaked: %+v", i, req)
		}
	}

	st, err := ParseRequest([]byte(full), &req)
	if err != nil || st != Complete(len(full)) {
		t.Fatalf("full: %v, %v", st, err)
	}
	if len(req.Headers) != 2 {
		t.Errorf("headers = %d, want 2", len(req.Headers))
	}
}

func TestParseResponse(t *testing.T) {
	buf := []byte("HTTP/1.1 404 Not Found\r\nContent-Length: 0\r\n\r\n")

	var resp Response
	st, err := ParseResponse(buf, &resp)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if !st.IsComplete() || st.Len() != len(buf) {
		t.Errorf("status = %v", st)
	}
	if resp.StatusCode != 404 || string(resp.Reason) != "Not Found" {
		t.Errorf("status line = %d %q", resp.StatusCode, resp.Reason)
	}
	if !resp.ProtoAtLeast(1, 1) {
		t.Error("ProtoAtLeast(1, 1) = false")
	}
}

func TestParseRequest_Errors(t *testing.T) {
	tests := []struct {
		input    string
		sentinel error
	}{
		{"G(T / HTTP/1.1\r\n\r\n", ErrInvalidMethod},
		{"GET /\x7f HTTP/1.1\r\n\r\n", ErrInvalidPath},
		{"GET / HTTP/2\r\n\r\n", ErrInvalidVersion},
		{"GET / HTTP/1.1\r\nNo Name: x\r\n\r\n", ErrInvalidFieldName},
		{"GET / HTTP/1.1\r\nA: b\x00c\r\n\r\n", ErrInvalidFieldValue},
		{"GET / HTTP/1.1\r\nA: b\r\n\rx", ErrInvalidNewLine},
	}

	for _, tt := range tests {
		t.Run(tt.sentinel.Error(), func(t *testing.T) {
			var req Request
			_, err := ParseRequest([]byte(tt.input), &req)
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error = %v, want %v", err, tt.sentinel)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error is %T, want *ParseError", err)
			}
			if KindOf(err) != pe.Kind {
				t.Errorf("KindOf = %v, want %v", KindOf(err), pe.Kind)
			}
		})
	}
}

func TestParseResponse_Errors(t *testing.T) {
	tests := []struct {
		input    string
		sentinel error
	}{
		{"HTTP/1.1 2x0 OK\r\n\r\n", ErrInvalidStatusCode},
		{"HTTP/1.1 200 O\x01K\r\n\r\n", ErrInvalidReasonPhrase},
		{"HTTP/1.1x200 OK\r\n\r\n", ErrInvalidVersion},
	}

	for _, tt := range tests {
		var resp Response
		_, err := ParseResponse([]byte(tt.input), &resp)
		if !errors.Is(err, tt.sentinel) {
			t.Errorf("ParseResponse(%q) error = %v, want %v", tt.input, err, tt.sentinel)
		}
	}
}

func TestParseHeaders(t *testing.T) {
	buf := []byte("A: 1\r\nB:  2 \r\n\r\nrest")
	headers, st, err := ParseHeaders(buf, nil)
	if err != nil {
		t.Fatalf("ParseHeaders() error = %v", err)
	}
	if st.Len() != len(buf)-len("rest") {
		t.Errorf("status = %v", st)
	}
	if len(headers) != 2 || string(headers[1].Value) != "2" {
		t.Errorf("headers = %q", headers)
	}
}

func TestNewParser_Reuse(t *testing.T) {
	buf := []byte("GET / HTTP/1.1\r\nHost: a\r\n\r\n")
	p := NewParser(buf)

	for i := 0; i < 3; i++ {
		var req Request
		st, err := p.ParseRequest(&req)
		if err != nil || st != Complete(len(buf)) {
			t.Fatalf("run %d: %v, %v", i, st, err)
		}
	}
}

func TestNewParser_ResetGrowingBuffer(t *testing.T) {
	stream := "HTTP/1.1 204 No Content\r\nServer: x\r\n\r\n"
	buf := make([]byte, 0, len(stream))
	p := NewParser(buf)

	var resp Response
	for i := 0; i < len(stream); i++ {
		buf = append(buf, stream[i])
		p.Reset(buf)
		resp.Headers = resp.Headers[:0]
		st, err := p.ParseResponse(&resp)
		if err != nil {
			t.Fatalf("byte %d: error = %v", i, err)
		}
		if i < len(stream)-1 && st.IsComplete() {
			t.Fatalf("byte %d: complete too early", i)
		}
		if i == len(stream)-1 && st != Complete(len(stream)) {
			t.Fatalf("final status = %v", st)
		}
	}
	if resp.StatusCode != 204 || string(resp.Headers.Get("server")) != "x" {
		t.Errorf("response = %+v", resp)
	}
}

func TestParse_Request(t *testing.T) {
	input := "GET /api HTTP/1.1\r\nHost: example.com\r\nAccept: */*\r\n\r\n"
	node, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	m, ok := NodeToInterface(node).(map[string]interface{})
	if !ok {
		t.Fatalf("NodeToInterface() = %T", NodeToInterface(node))
	}
	if m["type"] != "request" || m["method"] != "GET" || m["target"] != "/api" {
		t.Errorf("node = %v", m)
	}
	if m["length"] != int64(len(input)) {
		t.Errorf("length = %v, want %d", m["length"], len(input))
	}
	headers := m["headers"].([]interface{})
	if len(headers) != 2 {
		t.Errorf("headers = %v", headers)
	}
}

func TestParse_Response(t *testing.T) {
	node, err := Parse("HTTP/1.0 500 Internal Server Error\r\n\r\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	props := node.(*ast.ObjectNode).Properties()
	if props["statusCode"].(*ast.LiteralNode).Value() != int64(500) {
		t.Errorf("statusCode = %v", props["statusCode"])
	}
	if props["version"].(*ast.LiteralNode).Value() != "1.0" {
		t.Errorf("version = %v", props["version"])
	}
}

func TestParse_Incomplete(t *testing.T) {
	if _, err := Parse("GET / HTTP/1.1\r\n"); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Parse() error = %v, want ErrIncomplete", err)
	}
}

func TestParseReader(t *testing.T) {
	node, err := ParseReader(strings.NewReader("DELETE /item/1 HTTP/1.1\r\n\r\n"))
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	m := NodeToInterface(node).(map[string]interface{})
	if m["method"] != "DELETE" {
		t.Errorf("method = %v", m["method"])
	}
}
