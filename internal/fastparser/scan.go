package fastparser

type scanResult uint8

const (
	// scanFound means the delimiter was reached.
	scanFound scanResult = iota
	// scanRejected means a byte that is neither the delimiter nor acceptable was met.
	// No amount of extra input can repair it.
	scanRejected
	// scanExhausted means the buffer ended before the token was closed.
	scanExhausted
)

// find returns the index of the first byte of buf that belongs to class,
// or -1 if buf is exhausted without a match.
func find(buf []byte, class *charClass) int {
	for i := 0; i < len(buf); i++ {
		if class.has(buf[i]) {
			return i
		}
	}
	return -1
}

// scan consumes acceptable bytes up to the first delimiter. The returned index is
// the delimiter position for scanFound, the offending byte for scanRejected and
// len(buf) for scanExhausted.
func (tc *tokenClass) scan(buf []byte) (int, scanResult) {
	i := find(buf, &tc.stop)
	switch {
	case i < 0:
		return len(buf), scanExhausted
	case tc.delim.has(buf[i]):
		return i, scanFound
	default:
		return i, scanRejected
	}
}

// trimOWS trims optional whitespace (SP and HTAB) from both ends of b.
func trimOWS(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}
	return b
}
