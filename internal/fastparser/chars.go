package fastparser

// charClass is a byte lookup table. A set entry means the byte belongs to the class.
type charClass [256]bool

func (c *charClass) has(b byte) bool { return c[b] }

// tokenClass describes a token bounded by a delimiter. stop holds every byte that
// ends a scan: the delimiters plus every byte the token does not accept.
type tokenClass struct {
	delim charClass
	stop  charClass
}

func newTokenClass(delims string, accept func(byte) bool) *tokenClass {
	tc := &tokenClass{}
	for i := 0; i < len(delims); i++ {
		tc.delim[delims[i]] = true
	}
	for c := 0; c < 256; c++ {
		tc.stop[c] = tc.delim[c] || !accept(byte(c))
	}
	return tc
}

// tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//
//	"^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
func isTchar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', isDigit(c):
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isVisible reports VCHAR or obs-text.
func isVisible(c byte) bool {
	return c > 0x20 && c != 0x7f
}

// isFieldVChar covers field-value and reason-phrase bytes: HTAB, SP, VCHAR, obs-text.
func isFieldVChar(c byte) bool {
	return c == '\t' || c == ' ' || isVisible(c)
}

var (
	methodToken = newTokenClass(" ", isTchar)
	targetToken = newTokenClass(" ", isVisible)
	nameToken   = newTokenClass(":", isTchar)
	valueToken  = newTokenClass("\r\n", isFieldVChar)
	reasonToken = newTokenClass("\r\n", isFieldVChar)
)
