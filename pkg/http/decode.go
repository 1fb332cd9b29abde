package http

import (
	"errors"
	"fmt"
	"io"
)

const (
	// DefaultMaxHeaderBytes caps the preamble size a Decoder will buffer.
	DefaultMaxHeaderBytes = 64 << 10
	// DefaultInitialBufferSize is the first buffer allocation of a Decoder.
	DefaultInitialBufferSize = 4 << 10
)

// Decoder reads HTTP preambles from an input stream. It reads into a buffer
// it owns and re-scans the whole buffer after every read until the parser
// reports Complete.
//
// Tokens returned by DecodeRequest and DecodeResponse borrow the decoder's
// buffer and stay valid until the next Decode call. A single Decoder is not
// safe for concurrent use.
type Decoder struct {
	// MaxHeaderBytes limits the buffered preamble. Zero means DefaultMaxHeaderBytes.
	MaxHeaderBytes int
	// InitialBufferSize is the size of the first buffer. Zero means DefaultInitialBufferSize.
	InitialBufferSize int

	r        io.Reader
	buf      []byte
	n        int // bytes of buf holding data
	consumed int // length of the last complete preamble
	err      error
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the next preamble into v, which must be a *Request,
// *Response, *OwnedRequest or *OwnedResponse.
func (dec *Decoder) Decode(v interface{}) error {
	switch target := v.(type) {
	case *Request:
		return dec.DecodeRequest(target)
	case *Response:
		return dec.DecodeResponse(target)
	case *OwnedRequest:
		var req Request
		if err := dec.DecodeRequest(&req); err != nil {
			return err
		}
		*target = *OwnRequest(&req)
		return nil
	case *OwnedResponse:
		var resp Response
		if err := dec.DecodeResponse(&resp); err != nil {
			return err
		}
		*target = *OwnResponse(&resp)
		return nil
	default:
		return fmt.Errorf("http: Decode unsupported type %T", v)
	}
}

// DecodeRequest reads the next request preamble into req. Fields are
// appended to req.Headers.
//
// It returns io.EOF when the stream ends cleanly between messages,
// io.ErrUnexpectedEOF when it ends inside a preamble and ErrHeaderTooLarge
// when MaxHeaderBytes is reached first. Parse errors are wrapped and still
// match the ErrInvalid* sentinels.
func (dec *Decoder) DecodeRequest(req *Request) error {
	return dec.decode(func(buf []byte) (Status, error) {
		return ParseRequest(buf, req)
	})
}

// DecodeResponse reads the next response preamble into resp.
// See DecodeRequest for the error semantics.
func (dec *Decoder) DecodeResponse(resp *Response) error {
	return dec.decode(func(buf []byte) (Status, error) {
		return ParseResponse(buf, resp)
	})
}

// Buffered returns the bytes read past the last complete preamble: the start
// of a body or of the next pipelined message. The slice is valid until the
// next Decode call.
func (dec *Decoder) Buffered() []byte {
	return dec.buf[dec.consumed:dec.n]
}

// Discard drops up to n buffered bytes after the last preamble, e.g. a body
// the caller has handled via Buffered. It returns the number dropped.
func (dec *Decoder) Discard(n int) int {
	if avail := dec.n - dec.consumed; n > avail {
		n = avail
	}
	dec.consumed += n
	return n
}

func (dec *Decoder) decode(parse func([]byte) (Status, error)) error {
	dec.compact()

	for {
		if dec.n > 0 {
			st, err := parse(dec.buf[:dec.n])
			if err != nil {
				return fmt.Errorf("http: decode: %w", err)
			}
			if st.IsComplete() {
				dec.consumed = st.Len()
				return nil
			}
		}

		if dec.err != nil {
			return dec.readErr()
		}
		if dec.n >= dec.maxHeaderBytes() {
			return ErrHeaderTooLarge
		}
		dec.fill()
	}
}

// compact moves unconsumed bytes to the front of the buffer.
func (dec *Decoder) compact() {
	if dec.consumed == 0 {
		return
	}
	dec.n = copy(dec.buf, dec.buf[dec.consumed:dec.n])
	dec.consumed = 0
}

// fill grows the buffer if it is full and performs one read.
func (dec *Decoder) fill() {
	limit := dec.maxHeaderBytes()
	if dec.buf == nil {
		size := dec.InitialBufferSize
		if size <= 0 {
			size = DefaultInitialBufferSize
		}
		dec.buf = make([]byte, min(size, limit))
	} else if dec.n == len(dec.buf) {
		grown := make([]byte, min(2*len(dec.buf), limit))
		copy(grown, dec.buf[:dec.n])
		dec.buf = grown
	}

	m, err := dec.r.Read(dec.buf[dec.n:])
	dec.n += m
	if err != nil {
		dec.err = err
	}
}

func (dec *Decoder) readErr() error {
	if errors.Is(dec.err, io.EOF) {
		if dec.n == 0 {
			return io.EOF
		}
		return io.ErrUnexpectedEOF
	}
	return fmt.Errorf("http: decode: %w", dec.err)
}

func (dec *Decoder) maxHeaderBytes() int {
	if dec.MaxHeaderBytes > 0 {
		return dec.MaxHeaderBytes
	}
	return DefaultMaxHeaderBytes
}
