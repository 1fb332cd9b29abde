package http

import "github.com/shapestone/shape-preamble/internal/fastparser"

// AppendRequest appends the wire form of req to dst: the request-line,
// one "Name: Value" line per field and the blank line, all CRLF-terminated.
// An empty Version is written as 1.1.
//
// Every token is checked against the grammar first. A token the parser would
// reject or alter yields a *ParseError of the matching kind and dst unchanged.
func AppendRequest(dst []byte, req *Request) ([]byte, error) {
	version := req.Version
	if len(version) == 0 {
		version = []byte(defaultVersion)
	}
	if err := fastparser.CheckRequestLine(req.Method, req.Target, version); err != nil {
		return dst, err
	}
	if err := checkFields(req.Headers); err != nil {
		return dst, err
	}

	dst = appendRequestLine(dst, req.Method, req.Target, version)
	for _, f := range req.Headers {
		dst = appendField(dst, f.Name, f.Value)
	}
	return appendCRLF(dst), nil
}

// AppendResponse appends the wire form of resp to dst. It checks tokens the
// same way AppendRequest does.
func AppendResponse(dst []byte, resp *Response) ([]byte, error) {
	version := resp.Version
	if len(version) == 0 {
		version = []byte(defaultVersion)
	}
	if err := fastparser.CheckStatusLine(version, resp.StatusCode, resp.Reason); err != nil {
		return dst, err
	}
	if err := checkFields(resp.Headers); err != nil {
		return dst, err
	}

	dst = appendStatusLine(dst, version, resp.StatusCode, resp.Reason)
	for _, f := range resp.Headers {
		dst = appendField(dst, f.Name, f.Value)
	}
	return appendCRLF(dst), nil
}

func appendOwnedRequest(dst []byte, req *OwnedRequest) ([]byte, error) {
	version := req.Version
	if version == "" {
		version = defaultVersion
	}
	if err := fastparser.CheckRequestLine(req.Method, req.Target, version); err != nil {
		return dst, err
	}
	if err := checkHeaderList(req.Headers); err != nil {
		return dst, err
	}

	dst = appendRequestLine(dst, req.Method, req.Target, version)
	for _, h := range req.Headers {
		dst = appendField(dst, h.Key, h.Value)
	}
	return appendCRLF(dst), nil
}

func appendOwnedResponse(dst []byte, resp *OwnedResponse) ([]byte, error) {
	version := resp.Version
	if version == "" {
		version = defaultVersion
	}
	if err := fastparser.CheckStatusLine(version, resp.StatusCode, resp.Reason); err != nil {
		return dst, err
	}
	if err := checkHeaderList(resp.Headers); err != nil {
		return dst, err
	}

	dst = appendStatusLine(dst, version, resp.StatusCode, resp.Reason)
	for _, h := range resp.Headers {
		dst = appendField(dst, h.Key, h.Value)
	}
	return appendCRLF(dst), nil
}

func checkFields(fields Headers) error {
	for _, f := range fields {
		if err := fastparser.CheckField(f.Name, f.Value); err != nil {
			return err
		}
	}
	return nil
}

func checkHeaderList(list HeaderList) error {
	for _, h := range list {
		if err := fastparser.CheckField(h.Key, h.Value); err != nil {
			return err
		}
	}
	return nil
}
