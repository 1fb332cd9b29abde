package fastparser

// Header is an owned copy of a HeaderField.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// OwnedRequest is a copy of a Request that no longer references the input buffer.
type OwnedRequest struct {
	Method  string
	Target  string
	Version string
	Headers []Header
}

// OwnedResponse is a copy of a Response that no longer references the input buffer.
type OwnedResponse struct {
	Version    string
	StatusCode int
	Reason     string
	Headers    []Header
}

// Owned copies every token out of the input buffer.
func (r *Request) Owned() *OwnedRequest {
	return &OwnedRequest{
		Method:  internMethod(r.Method),
		Target:  string(r.Target),
		Version: internVersion(r.Version),
		Headers: ownHeaders(r.Headers),
	}
}

// Owned copies every token out of the input buffer.
func (r *Response) Owned() *OwnedResponse {
	return &OwnedResponse{
		Version:    internVersion(r.Version),
		StatusCode: r.StatusCode,
		Reason:     internReason(r.Reason),
		Headers:    ownHeaders(r.Headers),
	}
}

func ownHeaders(h Headers) []Header {
	if len(h) == 0 {
		return nil
	}
	out := make([]Header, len(h))
	for i, f := range h {
		out[i] = Header{Key: internHeaderName(f.Name), Value: string(f.Value)}
	}
	return out
}
