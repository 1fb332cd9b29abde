// Package tokenizer provides a lexical view of HTTP/1.1 preambles using Shape's
// tokenizer framework. It classifies bytes; it does not check the grammar.
package tokenizer

// Token kinds produced by NewTokenizer.
const (
	TokenVersion = "Version" // HTTP/1.1
	TokenWord    = "Token"   // tchar run: methods, field names, status codes
	TokenText    = "Text"    // other visible run: targets, values, reasons
	TokenColon   = "Colon"   // :
	TokenWS      = "WS"      // run of SP / HTAB
	TokenLineEnd = "LineEnd" // \r\n or bare \n
	TokenInvalid = "Invalid" // a single byte no other kind accepts, bare CR included
)
