package server

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/utils/uf"
	"github.com/julienschmidt/httprouter"
	"github.com/lesismal/nbio/logging"
	"github.com/shapestone/shape-preamble/internal/config"
	preamble "github.com/shapestone/shape-preamble/pkg/http"
)

// Session is the per-connection state: the bytes received so far and the
// body bytes still to be skipped. It has no socket of its own, so Feed can
// be driven directly.
type Session struct {
	id      string
	cfg     *config.Config
	router  *httprouter.Router
	buf     []byte
	headers preamble.Headers
	skip    int64
	closed  bool
}

// NewSession creates a session dispatching to router.
func NewSession(cfg *config.Config, router *httprouter.Router) *Session {
	return &Session{
		id:      uniuri.NewLen(10),
		cfg:     cfg,
		router:  router,
		buf:     make([]byte, 0, cfg.Buffer.Size.Default),
		headers: make(preamble.Headers, 0, cfg.Buffer.HeadersPrealloc),
	}
}

// ID returns the random connection id used in log lines.
func (s *Session) ID() string {
	return s.id
}

// Feed appends data to the connection buffer and serves every complete
// preamble in it. It returns the bytes to write back and whether the
// connection must be closed after writing them.
func (s *Session) Feed(data []byte) (out []byte, closeConn bool) {
	if s.closed {
		return nil, true
	}

	data = s.discard(data)
	s.buf = append(s.buf, data...)

	for len(s.buf) > 0 {
		req := preamble.Request{Headers: s.headers[:0]}
		st, err := preamble.ParseRequest(s.buf, &req)
		if err != nil {
			logging.Debug("conn %s: %v", s.id, err)
			return s.fail(out, http.StatusBadRequest, preamble.KindOf(err).String())
		}
		if st.IsIncomplete() {
			if len(s.buf) >= s.cfg.Buffer.Size.Maximal {
				logging.Debug("conn %s: preamble exceeds %d bytes", s.id, s.cfg.Buffer.Size.Maximal)
				return s.fail(out, http.StatusRequestHeaderFieldsTooLarge, "request header fields too large")
			}
			break
		}

		var bodyLen int64
		out, bodyLen, closeConn = s.serve(out, &req, st.Len())
		if closeConn {
			s.closed = true
			return out, true
		}

		s.consume(st.Len())
		s.skip = bodyLen
		rest := s.discard(s.buf)
		s.consume(len(s.buf) - len(rest))
	}

	return out, false
}

// serve dispatches one complete request and frames the reply. It reports the
// body length to skip and whether the connection ends after this reply.
func (s *Session) serve(out []byte, req *preamble.Request, length int) ([]byte, int64, bool) {
	s.headers = req.Headers[:0]

	if req.Headers.Has("Transfer-Encoding") {
		return appendError(out, http.StatusNotImplemented, "transfer codings are not supported"), 0, true
	}

	bodyLen := int64(0)
	if cl := req.Headers.Get("Content-Length"); cl != nil {
		n, err := strconv.ParseInt(uf.B2S(cl), 10, 64)
		if err != nil || n < 0 {
			return appendError(out, http.StatusBadRequest, "invalid content length"), 0, true
		}
		bodyLen = n
	}

	r, err := toStdRequest(req)
	if err != nil {
		return appendError(out, http.StatusBadRequest, "invalid request target"), 0, true
	}
	r = withPreamble(r, preamble.OwnRequest(req), length)

	res := newResponse()
	s.router.ServeHTTP(res, r)
	closeConn := wantsClose(req)
	logging.Debug("conn %s: %s %s -> %d", s.id, r.Method, r.RequestURI, res.statusCode)

	return res.appendTo(out, closeConn), bodyLen, closeConn
}

func (s *Session) fail(out []byte, code int, msg string) ([]byte, bool) {
	s.closed = true
	s.buf = s.buf[:0]
	return appendError(out, code, msg), true
}

// consume drops the first n buffered bytes.
func (s *Session) consume(n int) {
	s.buf = s.buf[:copy(s.buf, s.buf[n:])]
}

// discard removes pending body bytes from the front of data.
func (s *Session) discard(data []byte) []byte {
	if s.skip == 0 {
		return data
	}
	if int64(len(data)) <= s.skip {
		s.skip -= int64(len(data))
		return data[:0]
	}
	data = data[s.skip:]
	s.skip = 0
	return data
}

// wantsClose reports whether the connection ends after this exchange:
// "Connection: close", or HTTP/1.0 without "Connection: keep-alive".
func wantsClose(req *preamble.Request) bool {
	conn := req.Headers.Get("Connection")
	if bytes.EqualFold(conn, []byte("close")) {
		return true
	}
	return !req.ProtoAtLeast(1, 1) && !bytes.EqualFold(conn, []byte("keep-alive"))
}

// toStdRequest converts a borrowed preamble to a net/http request for the
// router. Every string is copied, so the result outlives the buffer.
func toStdRequest(req *preamble.Request) (*http.Request, error) {
	target := string(req.Target)
	u, err := url.ParseRequestURI(target)
	if err != nil {
		return nil, err
	}

	major, minor := req.Proto()
	header := make(http.Header, len(req.Headers))
	for _, f := range req.Headers {
		header.Add(string(f.Name), string(f.Value))
	}

	r := &http.Request{
		Method:     string(req.Method),
		URL:        u,
		Proto:      "HTTP/" + string(req.Version),
		ProtoMajor: major,
		ProtoMinor: minor,
		Header:     header,
		Host:       header.Get("Host"),
		RequestURI: target,
		Body:       http.NoBody,
	}
	if r.Host == "" {
		r.Host = u.Host
	}
	return r, nil
}
