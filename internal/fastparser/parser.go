// Package fastparser implements a zero-copy, incremental tokenizer for HTTP/1.1
// preambles: request-lines, status-lines and header lists.
//
// Every token it returns is a sub-slice of the caller's buffer. The buffer must
// not be mutated while any token is in use. Parsing is stateless: a caller that
// gets Incomplete appends more bytes and parses the whole buffer again.
package fastparser

const httpPrefix = "HTTP/"

// Request is a parsed request preamble. All byte slices borrow the input buffer.
type Request struct {
	Method  []byte
	Target  []byte
	Version []byte // the "D.D" after "HTTP/"
	Headers Headers
}

// Proto returns the major and minor version digits. It returns 0, 0 for a
// request that has not been parsed.
func (r *Request) Proto() (major, minor int) {
	return proto(r.Version)
}

// ProtoAtLeast reports whether the request version is at least major.minor.
func (r *Request) ProtoAtLeast(major, minor int) bool {
	return protoAtLeast(r.Version, major, minor)
}

// Response is a parsed status-line plus headers. All byte slices borrow the input buffer.
type Response struct {
	Version    []byte
	StatusCode int
	Reason     []byte
	Headers    Headers
}

// Proto returns the major and minor version digits.
func (r *Response) Proto() (major, minor int) {
	return proto(r.Version)
}

// ProtoAtLeast reports whether the response version is at least major.minor.
func (r *Response) ProtoAtLeast(major, minor int) bool {
	return protoAtLeast(r.Version, major, minor)
}

func proto(v []byte) (major, minor int) {
	if len(v) != 3 {
		return 0, 0
	}
	return int(v[0] - '0'), int(v[2] - '0')
}

func protoAtLeast(v []byte, major, minor int) bool {
	maj, min := proto(v)
	return maj > major || (maj == major && min >= minor)
}

// Parser scans a single buffer. It keeps no state that outlives a parse.
type Parser struct {
	data []byte
	pos  int
}

// NewParser creates a parser over data.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Reset points the parser at data, typically the same buffer after more bytes
// were appended to it.
func (p *Parser) Reset(data []byte) {
	initParser(p, data)
}

// initParser initializes a parser in-place (stack-friendly, avoids heap alloc).
func initParser(p *Parser, data []byte) {
	p.data = data
	p.pos = 0
}

// ParseRequest parses a request preamble from the start of data. Header fields
// are appended to req.Headers.
//
// On Incomplete or error, req's start-line tokens are reset to nil and the fields
// appended by this call are cut off again; fields already present are left alone.
// The returned Status is meaningful only when err is nil.
func ParseRequest(data []byte, req *Request) (Status, error) {
	var p Parser
	initParser(&p, data)
	return p.ParseRequest(req)
}

// ParseResponse is ParseRequest for a status-line preamble.
func ParseResponse(data []byte, resp *Response) (Status, error) {
	var p Parser
	initParser(&p, data)
	return p.ParseResponse(resp)
}

// ParseRequest parses a request preamble from the parser's start offset.
func (p *Parser) ParseRequest(req *Request) (Status, error) {
	p.pos = 0
	mark := len(req.Headers)
	if err := p.parseRequest(req); err != nil {
		req.Method, req.Target, req.Version = nil, nil, nil
		req.Headers = req.Headers[:mark]
		return p.outcome(err)
	}
	return Complete(p.pos), nil
}

// ParseResponse parses a response preamble from the parser's start offset.
func (p *Parser) ParseResponse(resp *Response) (Status, error) {
	p.pos = 0
	mark := len(resp.Headers)
	if err := p.parseResponse(resp); err != nil {
		resp.Version, resp.StatusCode, resp.Reason = nil, 0, nil
		resp.Headers = resp.Headers[:mark]
		return p.outcome(err)
	}
	return Complete(p.pos), nil
}

func (p *Parser) outcome(err error) (Status, error) {
	if err == errNeedMore {
		return Incomplete, nil
	}
	return Incomplete, err
}

// parseRequest parses "method SP target SP HTTP/D.D eol headers eol".
func (p *Parser) parseRequest(req *Request) error {
	method, err := p.token(methodToken, InvalidMethod, false)
	if err != nil {
		return err
	}
	p.pos++

	target, err := p.token(targetToken, InvalidPath, false)
	if err != nil {
		return err
	}
	p.pos++

	if err = p.literal(httpPrefix, InvalidVersion); err != nil {
		return err
	}
	version, err := p.version()
	if err != nil {
		return err
	}
	if err = p.newline(InvalidVersion); err != nil {
		return err
	}

	headers, err := p.headers(req.Headers)
	if err != nil {
		return err
	}

	req.Method, req.Target, req.Version, req.Headers = method, target, version, headers
	return nil
}

// parseResponse parses "HTTP/D.D SP 3DIGIT SP reason eol headers eol".
func (p *Parser) parseResponse(resp *Response) error {
	if err := p.literal(httpPrefix, InvalidVersion); err != nil {
		return err
	}
	version, err := p.version()
	if err != nil {
		return err
	}
	if err = p.expect(' ', InvalidVersion); err != nil {
		return err
	}

	code, err := p.statusCode()
	if err != nil {
		return err
	}

	reason, err := p.token(reasonToken, InvalidReasonPhrase, true)
	if err != nil {
		return err
	}
	if err = p.newline(InvalidReasonPhrase); err != nil {
		return err
	}

	headers, err := p.headers(resp.Headers)
	if err != nil {
		return err
	}

	resp.Version, resp.StatusCode, resp.Reason, resp.Headers = version, code, reason, headers
	return nil
}

// token scans a token of class tc starting at pos and leaves pos on its delimiter.
func (p *Parser) token(tc *tokenClass, kind ErrorKind, emptyOK bool) ([]byte, error) {
	rest := p.data[p.pos:]
	n, res := tc.scan(rest)
	switch res {
	case scanExhausted:
		return nil, errNeedMore
	case scanRejected:
		return nil, p.errorAt(kind, p.pos+n)
	}
	if n == 0 && !emptyOK {
		return nil, p.errorAt(kind, p.pos)
	}

	p.pos += n
	return rest[:n:n], nil
}

// literal consumes s. A short buffer that matches so far needs more data.
func (p *Parser) literal(s string, kind ErrorKind) error {
	rest := p.data[p.pos:]
	for i := 0; i < len(s); i++ {
		if i >= len(rest) {
			return errNeedMore
		}
		if rest[i] != s[i] {
			return p.errorAt(kind, p.pos+i)
		}
	}
	p.pos += len(s)
	return nil
}

// expect consumes the single byte c.
func (p *Parser) expect(c byte, kind ErrorKind) error {
	if p.pos >= len(p.data) {
		return errNeedMore
	}
	if p.data[p.pos] != c {
		return p.errorAt(kind, p.pos)
	}
	p.pos++
	return nil
}

// version consumes DIGIT "." DIGIT.
func (p *Parser) version() ([]byte, error) {
	rest := p.data[p.pos:]
	for i := 0; i < 3; i++ {
		if i >= len(rest) {
			return nil, errNeedMore
		}
		ok := isDigit(rest[i])
		if i == 1 {
			ok = rest[i] == '.'
		}
		if !ok {
			return nil, p.errorAt(InvalidVersion, p.pos+i)
		}
	}
	p.pos += 3
	return rest[:3:3], nil
}

// statusCode consumes exactly three digits and the SP after them. A line
// terminator right after the digits is accepted as an omitted reason phrase.
func (p *Parser) statusCode() (int, error) {
	rest := p.data[p.pos:]
	code := 0
	for i := 0; i < 3; i++ {
		if i >= len(rest) {
			return 0, errNeedMore
		}
		if !isDigit(rest[i]) {
			return 0, p.errorAt(InvalidStatusCode, p.pos+i)
		}
		code = code*10 + int(rest[i]-'0')
	}
	p.pos += 3

	if p.pos >= len(p.data) {
		return 0, errNeedMore
	}
	switch p.data[p.pos] {
	case ' ':
		p.pos++
	case '\r', '\n':
	default:
		return 0, p.errorAt(InvalidStatusCode, p.pos)
	}
	return code, nil
}

// newline consumes CRLF or a bare LF. Any other byte at pos is reported as kind;
// a CR followed by anything but LF is InvalidNewLine.
func (p *Parser) newline(kind ErrorKind) error {
	if p.pos >= len(p.data) {
		return errNeedMore
	}
	switch p.data[p.pos] {
	case '\n':
		p.pos++
		return nil
	case '\r':
		if p.pos+1 >= len(p.data) {
			return errNeedMore
		}
		if p.data[p.pos+1] != '\n' {
			return p.errorAt(InvalidNewLine, p.pos+1)
		}
		p.pos += 2
		return nil
	}
	return p.errorAt(kind, p.pos)
}

func (p *Parser) errorAt(kind ErrorKind, offset int) error {
	return newParseError(p.data, kind, offset)
}
