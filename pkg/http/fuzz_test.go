package http

import (
	"bytes"
	"errors"
	"testing"
)

// Seed corpora for requests and responses used across multiple fuzz targets.

var requestSeeds = [][]byte{
	[]byte("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"),
	[]byte("POST /api/users HTTP/1.1\r\nHost: api.example.com\r\nContent-Type: application/json\r\nContent-Length: 15\r\n\r\n{\"name\":\"alice\"}"),
	[]byte("PUT /resource/1 HTTP/1.1\r\nHost: example.com\r\nAuthorization: Bearer token123\r\n\r\n"),
	[]byte("OPTIONS * HTTP/1.1\r\nHost: example.com\r\n\r\n"),
	[]byte("GET /path?q=hello+world&page=2 HTTP/1.1\r\nAccept: text/html,application/json\r\nAccept-Encoding: gzip, deflate\r\nConnection: keep-alive\r\n\r\n"),
	// Edge cases
	[]byte("GET / HTTP/1.0\n\n"),
	[]byte("GET / HTTP/1.1\r\nX-Empty:\r\n\r\n"),
	[]byte("GET / HTTP/1.1\r\nX-Pad: \t v \t\r\n\r\n"),
	[]byte("GET / HTTP/1.1\r\n\r"),
}

var responseSeeds = [][]byte{
	[]byte("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 5\r\n\r\nhello"),
	[]byte("HTTP/1.1 404 Not Found\r\nContent-Type: application/json\r\n\r\n"),
	[]byte("HTTP/1.1 204 No Content\r\n\r\n"),
	[]byte("HTTP/1.1 100 Continue\r\n\r\n"),
	// Edge cases
	[]byte("HTTP/1.0 200\r\n\r\n"),
	[]byte("HTTP/1.1 200 \r\n\r\n"),
	[]byte("HTTP/1.1 200 OK\nSet-Cookie: a=1; Path=/\n\n"),
}

// FuzzUnmarshalRequest checks that whole-message parsing never panics and
// that every successful result survives a Marshal round trip.
func FuzzUnmarshalRequest(f *testing.F) {
	for _, seed := range requestSeeds {
		f.Add(seed)
	}
	f.Add([]byte(""))
	f.Add([]byte("\r\n\r\n"))
	f.Add([]byte("GET"))

	f.Fuzz(func(t *testing.T, data []byte) {
		req, err := UnmarshalRequest(data)
		if err != nil {
			if !errors.Is(err, ErrIncomplete) && KindOf(err) == 0 {
				t.Fatalf("error %v is neither incomplete nor a parse error", err)
			}
			return
		}

		wire, err := Marshal(req)
		if err != nil {
			t.Fatalf("Marshal() of parsed request failed: %v", err)
		}
		again, err := UnmarshalRequest(wire)
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", wire, err)
		}
		if again.Method != req.Method || again.Target != req.Target || len(again.Headers) != len(req.Headers) {
			t.Fatalf("round trip mismatch: %+v vs %+v", req, again)
		}
	})
}

// FuzzUnmarshalResponse fuzzes the response parser.
func FuzzUnmarshalResponse(f *testing.F) {
	for _, seed := range responseSeeds {
		f.Add(seed)
	}
	f.Add([]byte("HTTP/"))

	f.Fuzz(func(t *testing.T, data []byte) {
		resp, err := UnmarshalResponse(data)
		if err != nil {
			return
		}
		if resp.StatusCode < 0 || resp.StatusCode > 999 {
			t.Fatalf("status code %d out of range", resp.StatusCode)
		}
	})
}

// FuzzDecoder feeds the same input through the streaming decoder and the
// whole-buffer parser; both must agree.
func FuzzDecoder(f *testing.F) {
	for _, seed := range requestSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		var direct Request
		st, perr := ParseRequest(data, &direct)

		dec := NewDecoder(bytes.NewReader(data))
		dec.InitialBufferSize = 7
		dec.MaxHeaderBytes = len(data) + 1
		var streamed Request
		derr := dec.DecodeRequest(&streamed)

		switch {
		case perr != nil:
			if KindOf(derr) != KindOf(perr) {
				t.Fatalf("decoder error %v, parser error %v", derr, perr)
			}
		case st.IsComplete():
			if derr != nil || !sameRequest(&direct, &streamed) {
				t.Fatalf("decoder %v / %+v, parser %+v", derr, streamed, direct)
			}
		default:
			if derr == nil {
				t.Fatal("decoder completed on an incomplete input")
			}
		}
	})
}
