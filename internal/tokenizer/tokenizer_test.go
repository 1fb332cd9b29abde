package tokenizer

import (
	"testing"

	coretok "github.com/shapestone/shape-core/pkg/tokenizer"
)

type want struct {
	kind  string
	value string
}

func checkTokens(t *testing.T, tokens []coretok.Token, expected []want) {
	t.Helper()
	if len(tokens) != len(expected) {
		t.Fatalf("token count = %d, want %d. tokens = %v", len(tokens), len(expected), formatTokens(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Kind() != exp.kind {
			t.Errorf("token[%d].Kind() = %q, want %q", i, tokens[i].Kind(), exp.kind)
		}
		if tokens[i].ValueString() != exp.value {
			t.Errorf("token[%d].Value() = %q, want %q", i, tokens[i].ValueString(), exp.value)
		}
	}
}

func TestLex_RequestLine(t *testing.T) {
	tokens, eos := Lex("GET /api HTTP/1.1\r\n")
	if !eos {
		t.Error("expected EOS")
	}

	checkTokens(t, tokens, []want{
		{TokenWord, "GET"},
		{TokenWS, " "},
		{TokenText, "/api"},
		{TokenWS, " "},
		{TokenVersion, "HTTP/1.1"},
		{TokenLineEnd, "\r\n"},
	})
}

func TestLex_StatusLine(t *testing.T) {
	tokens, eos := Lex("HTTP/1.0 404 Not Found\n")
	if !eos {
		t.Error("expected EOS")
	}

	checkTokens(t, tokens, []want{
		{TokenVersion, "HTTP/1.0"},
		{TokenWS, " "},
		{TokenWord, "404"},
		{TokenWS, " "},
		{TokenWord, "Not"},
		{TokenWS, " "},
		{TokenWord, "Found"},
		{TokenLineEnd, "\n"},
	})
}

func TestLex_HeaderLine(t *testing.T) {
	tokens, _ := Lex("Host:\texample.com:8080\r\n\r\n")

	checkTokens(t, tokens, []want{
		{TokenWord, "Host"},
		{TokenColon, ":"},
		{TokenWS, "\t"},
		{TokenWord, "example.com"},
		{TokenColon, ":"},
		{TokenWord, "8080"},
		{TokenLineEnd, "\r\n"},
		{TokenLineEnd, "\r\n"},
	})
}

func TestLex_InvalidBytes(t *testing.T) {
	tokens, eos := Lex("G\x01ET\rX")
	if !eos {
		t.Error("expected EOS")
	}

	checkTokens(t, tokens, []want{
		{TokenWord, "G"},
		{TokenInvalid, "\x01"},
		{TokenWord, "ET"},
		{TokenInvalid, "\r"},
		{TokenWord, "X"},
	})
}

func TestLex_VersionLookalikes(t *testing.T) {
	tokens, _ := Lex("HTTP/1.11 HTTP/A.1")
	checkTokens(t, tokens, []want{
		{TokenText, "HTTP/1.11"},
		{TokenWS, " "},
		{TokenText, "HTTP/A.1"},
	})
}

func TestNewTokenizerWithStream(t *testing.T) {
	stream := coretok.NewStream("GET /api HTTP/1.1\r\n")
	tok := NewTokenizerWithStream(stream)

	tokens, eos := tok.Tokenize()
	if !eos {
		t.Error("expected EOS")
	}
	if len(tokens) == 0 {
		t.Fatal("expected tokens, got none")
	}
	if tokens[0].Kind() != TokenWord || tokens[0].ValueString() != "GET" {
		t.Errorf("tokens[0] = %v, want Token('GET')", tokens[0])
	}
}

func TestLineEndMatcher(t *testing.T) {
	if tok := LineEndMatcher()(coretok.NewStream("")); tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
	if tok := LineEndMatcher()(coretok.NewStream("GET /")); tok != nil {
		t.Errorf("expected nil for non line end, got %v", tok)
	}

	tok := LineEndMatcher()(coretok.NewStream("\rGET"))
	if tok == nil || tok.Kind() != TokenInvalid {
		t.Errorf("bare CR = %v, want Invalid", tok)
	}
	tok = LineEndMatcher()(coretok.NewStream("\nGET"))
	if tok == nil || tok.Kind() != TokenLineEnd || tok.ValueString() != "\n" {
		t.Errorf("bare LF = %v, want LineEnd", tok)
	}
}

func TestWSMatcher(t *testing.T) {
	if tok := WSMatcher()(coretok.NewStream("X")); tok != nil {
		t.Errorf("expected nil for non-WS char, got %v", tok)
	}
	tok := WSMatcher()(coretok.NewStream(" \t x"))
	if tok == nil || tok.ValueString() != " \t " {
		t.Errorf("WS run = %v, want ' \\t '", tok)
	}
}

func TestVersionMatcher(t *testing.T) {
	for _, in := range []string{"", "GET /", "HTTP/", "HTTP/1", "HTTP/1.", "HTTP/1.1x"} {
		if tok := VersionMatcher()(coretok.NewStream(in)); tok != nil {
			t.Errorf("VersionMatcher(%q) = %v, want nil", in, tok)
		}
	}
	tok := VersionMatcher()(coretok.NewStream("HTTP/2.0\r\n"))
	if tok == nil || tok.ValueString() != "HTTP/2.0" {
		t.Errorf("VersionMatcher = %v, want HTTP/2.0", tok)
	}
}

func TestWordMatcher(t *testing.T) {
	if tok := WordMatcher()(coretok.NewStream("")); tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
	if tok := WordMatcher()(coretok.NewStream(": value")); tok != nil {
		t.Errorf("expected nil when starting with colon, got %v", tok)
	}
	tok := WordMatcher()(coretok.NewStream("text/html;q=0.9 x"))
	if tok == nil || tok.Kind() != TokenText || tok.ValueString() != "text/html;q=0.9" {
		t.Errorf("WordMatcher = %v, want Text('text/html;q=0.9')", tok)
	}
}

func TestInvalidMatcher_EOS(t *testing.T) {
	if tok := InvalidMatcher()(coretok.NewStream("")); tok != nil {
		t.Errorf("expected nil for EOS stream, got %v", tok)
	}
}

func formatTokens(tokens []coretok.Token) string {
	s := "["
	for i, t := range tokens {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	s += "]"
	return s
}
