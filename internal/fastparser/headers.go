package fastparser

import "github.com/indigo-web/utils/uf"

// HeaderField is one "name: value" line. Value has leading and trailing
// SP/HTAB trimmed.
type HeaderField struct {
	Name  []byte
	Value []byte
}

// Headers is an ordered list of fields in input order. Repeated names are kept
// as separate entries.
type Headers []HeaderField

// Get returns the value of the first field named name (case-insensitive), or nil.
func (h Headers) Get(name string) []byte {
	for i := range h {
		if eqFold(uf.B2S(h[i].Name), name) {
			return h[i].Value
		}
	}
	return nil
}

// Has reports whether a field named name is present.
func (h Headers) Has(name string) bool {
	for i := range h {
		if eqFold(uf.B2S(h[i].Name), name) {
			return true
		}
	}
	return false
}

// Values returns the values of every field named name, in input order.
func (h Headers) Values(name string) [][]byte {
	var vals [][]byte
	for i := range h {
		if eqFold(uf.B2S(h[i].Name), name) {
			vals = append(vals, h[i].Value)
		}
	}
	return vals
}

// ParseHeaders parses a header list terminated by a blank line from the start
// of data, appending fields to dst. On Incomplete or error the returned slice is
// dst with nothing appended.
func ParseHeaders(data []byte, dst Headers) (Headers, Status, error) {
	var p Parser
	initParser(&p, data)
	mark := len(dst)
	headers, err := p.headers(dst)
	if err != nil {
		st, perr := p.outcome(err)
		return dst[:mark], st, perr
	}
	return headers, Complete(p.pos), nil
}

// headers parses field lines until the blank line.
func (p *Parser) headers(dst Headers) (Headers, error) {
	for {
		if p.pos >= len(p.data) {
			return dst, errNeedMore
		}
		if c := p.data[p.pos]; c == '\r' || c == '\n' {
			return dst, p.newline(InvalidNewLine)
		}

		name, err := p.token(nameToken, InvalidFieldName, false)
		if err != nil {
			return dst, err
		}
		p.pos++

		value, err := p.token(valueToken, InvalidFieldValue, true)
		if err != nil {
			return dst, err
		}
		if err = p.newline(InvalidFieldValue); err != nil {
			return dst, err
		}

		dst = append(dst, HeaderField{Name: name, Value: trimOWS(value)})
	}
}

// eqFold is a fast ASCII case-insensitive string comparison.
func eqFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
