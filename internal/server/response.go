package server

import (
	"net/http"
	"sort"
	"strconv"

	preamble "github.com/shapestone/shape-preamble/pkg/http"
)

const internalError = "HTTP/1.1 500 Internal Server Error\r\nConnection: close\r\nContent-Length: 0\r\n\r\n"

// response buffers what a handler writes so the session can frame it once
// the handler returns.
type response struct {
	header     http.Header
	statusCode int
	body       []byte
}

func newResponse() *response {
	return &response{header: make(http.Header)}
}

// Header implements http.ResponseWriter.
func (res *response) Header() http.Header {
	return res.header
}

// WriteHeader implements http.ResponseWriter. Only the first call counts.
func (res *response) WriteHeader(statusCode int) {
	if res.statusCode == 0 && http.StatusText(statusCode) != "" {
		res.statusCode = statusCode
	}
}

// Write implements http.ResponseWriter.
func (res *response) Write(data []byte) (int, error) {
	if res.statusCode == 0 {
		res.WriteHeader(http.StatusOK)
	}
	res.body = append(res.body, data...)
	return len(data), nil
}

// appendTo frames the buffered response onto dst. Header names are written in
// sorted order so replies are deterministic.
func (res *response) appendTo(dst []byte, closeConn bool) []byte {
	if res.statusCode == 0 {
		res.statusCode = http.StatusOK
	}

	res.header.Del("Content-Length")
	res.header.Set("Content-Length", strconv.Itoa(len(res.body)))
	if closeConn {
		res.header.Set("Connection", "close")
	}

	keys := make([]string, 0, len(res.header))
	for k := range res.header {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	head := preamble.OwnedResponse{
		Version:    "1.1",
		StatusCode: res.statusCode,
		Reason:     http.StatusText(res.statusCode),
	}
	for _, k := range keys {
		for _, v := range res.header[k] {
			head.Headers.Add(k, v)
		}
	}

	wire, err := preamble.Marshal(&head)
	if err != nil {
		return append(dst, internalError...)
	}
	dst = append(dst, wire...)
	return append(dst, res.body...)
}

// appendError frames a plain-text error reply that closes the connection.
func appendError(dst []byte, code int, msg string) []byte {
	res := newResponse()
	res.header.Set("Content-Type", "text/plain; charset=utf-8")
	res.WriteHeader(code)
	res.body = append(res.body, msg...)
	res.body = append(res.body, '\n')
	return res.appendTo(dst, true)
}
