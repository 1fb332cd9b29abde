package fastparser

// String interning for common HTTP tokens, used when borrowed tokens are copied
// out of the input buffer.
//
// The Go compiler optimizes map lookups with string([]byte) keys
// to avoid allocating the temporary string (the mapaccess optimization).
// This means internMethod(someBytes) is zero-alloc for known methods.

var methods = map[string]string{
	"GET": "GET", "HEAD": "HEAD", "POST": "POST",
	"PUT": "PUT", "DELETE": "DELETE", "CONNECT": "CONNECT",
	"OPTIONS": "OPTIONS", "TRACE": "TRACE", "PATCH": "PATCH",
}

var versions = map[string]string{
	"1.0": "1.0", "1.1": "1.1",
}

var headerNames = map[string]string{
	"Accept":            "Accept",
	"Accept-Encoding":   "Accept-Encoding",
	"Accept-Language":   "Accept-Language",
	"Authorization":     "Authorization",
	"Cache-Control":     "Cache-Control",
	"Connection":        "Connection",
	"Content-Encoding":  "Content-Encoding",
	"Content-Length":    "Content-Length",
	"Content-Type":      "Content-Type",
	"Cookie":            "Cookie",
	"Date":              "Date",
	"ETag":              "ETag",
	"Expect":            "Expect",
	"Host":              "Host",
	"If-Modified-Since": "If-Modified-Since",
	"If-None-Match":     "If-None-Match",
	"Last-Modified":     "Last-Modified",
	"Location":          "Location",
	"Origin":            "Origin",
	"Referer":           "Referer",
	"Server":            "Server",
	"Set-Cookie":        "Set-Cookie",
	"Transfer-Encoding": "Transfer-Encoding",
	"Upgrade":           "Upgrade",
	"User-Agent":        "User-Agent",
	"Vary":              "Vary",
	"X-Forwarded-For":   "X-Forwarded-For",
	"X-Request-ID":      "X-Request-ID",
}

var reasons = map[string]string{
	"OK":                    "OK",
	"Created":               "Created",
	"No Content":            "No Content",
	"Moved Permanently":     "Moved Permanently",
	"Found":                 "Found",
	"Not Modified":          "Not Modified",
	"Bad Request":           "Bad Request",
	"Unauthorized":          "Unauthorized",
	"Forbidden":             "Forbidden",
	"Not Found":             "Not Found",
	"Method Not Allowed":    "Method Not Allowed",
	"Internal Server Error": "Internal Server Error",
	"Bad Gateway":           "Bad Gateway",
	"Service Unavailable":   "Service Unavailable",
}

func intern(table map[string]string, b []byte) string {
	if s, ok := table[string(b)]; ok {
		return s
	}
	return string(b)
}

// internMethod returns an interned string for known HTTP methods, avoiding allocation.
func internMethod(b []byte) string { return intern(methods, b) }

// internVersion returns an interned string for known HTTP versions, avoiding allocation.
func internVersion(b []byte) string { return intern(versions, b) }

// internHeaderName returns an interned string for known header names, avoiding allocation.
func internHeaderName(b []byte) string { return intern(headerNames, b) }

// internReason returns an interned string for known reason phrases, avoiding allocation.
func internReason(b []byte) string { return intern(reasons, b) }
