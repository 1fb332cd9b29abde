package http

import (
	"io"
)

// Encoder writes HTTP preambles to an output stream.
type Encoder struct {
	w   io.Writer
	buf []byte
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the wire-format preamble of v to the stream.
// v accepts the same types as Marshal.
func (enc *Encoder) Encode(v interface{}) error {
	var err error
	enc.buf = enc.buf[:0]

	switch msg := v.(type) {
	case *Request:
		enc.buf, err = AppendRequest(enc.buf, msg)
	case *Response:
		enc.buf, err = AppendResponse(enc.buf, msg)
	default:
		var data []byte
		data, err = Marshal(v)
		enc.buf = append(enc.buf, data...)
	}
	if err != nil {
		return err
	}

	_, err = enc.w.Write(enc.buf)
	return err
}
