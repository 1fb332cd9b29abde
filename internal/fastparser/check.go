package fastparser

// The Check functions accept exactly what the parser would hand back
// unchanged, so writing the checked tokens and parsing them again yields
// the same tokens.

// CheckRequestLine validates the tokens of a request-line. version is the
// "D.D" part without the HTTP/ prefix.
func CheckRequestLine[T string | []byte](method, target, version T) error {
	if !isTokenRun(method, isTchar) {
		return ErrInvalidMethod
	}
	if !isTokenRun(target, isVisible) {
		return ErrInvalidPath
	}
	if !isVersion(version) {
		return ErrInvalidVersion
	}
	return nil
}

// CheckStatusLine validates the version, code and reason of a status-line.
func CheckStatusLine[T string | []byte](version T, code int, reason T) error {
	if !isVersion(version) {
		return ErrInvalidVersion
	}
	if code < 100 || code > 999 {
		return ErrInvalidStatusCode
	}
	for i := 0; i < len(reason); i++ {
		if !isFieldVChar(reason[i]) {
			return ErrInvalidReasonPhrase
		}
	}
	return nil
}

// CheckField validates a header field. The value may not start or end with
// SP or HTAB since the parser trims them.
func CheckField[T string | []byte](name, value T) error {
	if !isTokenRun(name, isTchar) {
		return ErrInvalidFieldName
	}
	n := len(value)
	if n > 0 && (isOWS(value[0]) || isOWS(value[n-1])) {
		return ErrInvalidFieldValue
	}
	for i := 0; i < n; i++ {
		if !isFieldVChar(value[i]) {
			return ErrInvalidFieldValue
		}
	}
	return nil
}

func isTokenRun[T string | []byte](s T, accept func(byte) bool) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !accept(s[i]) {
			return false
		}
	}
	return true
}

func isVersion[T string | []byte](v T) bool {
	return len(v) == 3 && isDigit(v[0]) && v[1] == '.' && isDigit(v[2])
}

func isOWS(c byte) bool {
	return c == ' ' || c == '\t'
}
