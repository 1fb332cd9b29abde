package http

import (
	"fmt"
	"sync"
)

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 1024)
		return &b
	},
}

// Marshal returns the wire-format preamble of v.
//
// v must be a *Request, *Response, *OwnedRequest or *OwnedResponse, or
// implement Marshaler. The output always uses CRLF line terminators.
//
// Marshal uses a sync.Pool buffer internally and returns a right-sized copy.
func Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("http: Marshal(nil)")
	}

	if m, ok := v.(Marshaler); ok {
		return m.MarshalHTTP()
	}

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]

	var err error
	switch msg := v.(type) {
	case *Request:
		buf, err = AppendRequest(buf, msg)
	case *Response:
		buf, err = AppendResponse(buf, msg)
	case *OwnedRequest:
		buf, err = appendOwnedRequest(buf, msg)
	case *OwnedResponse:
		buf, err = appendOwnedResponse(buf, msg)
	default:
		err = fmt.Errorf("http: Marshal unsupported type %T", v)
	}

	if err != nil {
		*bp = buf
		bufPool.Put(bp)
		return nil, err
	}

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}
