package http

import "strconv"

const defaultVersion = "1.1"

// appendCRLF appends \r\n to buf.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

// appendRequestLine appends "METHOD TARGET HTTP/VERSION\r\n" to buf.
func appendRequestLine[T string | []byte](buf []byte, method, target, version T) []byte {
	buf = append(buf, method...)
	buf = append(buf, ' ')
	buf = append(buf, target...)
	buf = append(buf, " HTTP/"...)
	buf = append(buf, version...)
	return appendCRLF(buf)
}

// appendStatusLine appends "HTTP/VERSION STATUS REASON\r\n" to buf.
func appendStatusLine[T string | []byte](buf []byte, version T, statusCode int, reason T) []byte {
	buf = append(buf, "HTTP/"...)
	buf = append(buf, version...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(statusCode), 10)
	buf = append(buf, ' ')
	buf = append(buf, reason...)
	return appendCRLF(buf)
}

// appendField appends "Name: Value\r\n" to buf.
func appendField[T string | []byte](buf []byte, name, value T) []byte {
	buf = append(buf, name...)
	buf = append(buf, ':', ' ')
	buf = append(buf, value...)
	return appendCRLF(buf)
}
