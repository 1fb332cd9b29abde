package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for HTTP preambles. Matchers, by priority:
// 1. LineEnd (\r\n, \n; a bare \r becomes Invalid)
// 2. WS (SP / HTAB runs)
// 3. Colon
// 4. Version (exactly HTTP/DIGIT.DIGIT)
// 5. Word / Text (visible runs up to WS, colon or a line end)
// 6. Invalid (any other single character)
//
// Whitespace is significant in HTTP, so no whitespace skipper is installed.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		LineEndMatcher(),
		WSMatcher(),
		tokenizer.StringMatcherFunc(TokenColon, ":"),
		VersionMatcher(),
		WordMatcher(),
		InvalidMatcher(),
	)
}

// NewTokenizerWithStream creates a tokenizer for HTTP preambles using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// Lex tokenizes input. The bool reports whether the whole input was consumed.
func Lex(input string) ([]tokenizer.Token, bool) {
	tok := NewTokenizer()
	tok.Initialize(input)
	return tok.Tokenize()
}

// LineEndMatcher matches \r\n or bare \n. A CR without LF is returned as Invalid.
func LineEndMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}

		switch r {
		case '\n':
			stream.NextChar()
			return tokenizer.NewToken(TokenLineEnd, []rune{'\n'})
		case '\r':
			stream.NextChar()
			if r2, ok := stream.PeekChar(); ok && r2 == '\n' {
				stream.NextChar()
				return tokenizer.NewToken(TokenLineEnd, []rune{'\r', '\n'})
			}
			return tokenizer.NewToken(TokenInvalid, []rune{'\r'})
		}
		return nil
	}
}

// WSMatcher matches a run of SP and HTAB.
func WSMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || (r != ' ' && r != '\t') {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenWS, value)
	}
}

// VersionMatcher matches "HTTP/" DIGIT "." DIGIT.
func VersionMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		value := make([]rune, 0, 8)
		for _, expected := range "HTTP/#.#" {
			r, ok := stream.PeekChar()
			if !ok {
				return nil
			}
			if expected == '#' {
				if r < '0' || r > '9' {
					return nil
				}
			} else if r != expected {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}

		// "HTTP/1.11" is not a version followed by a word
		if r, ok := stream.PeekChar(); ok && isWordRune(r) {
			return nil
		}
		return tokenizer.NewToken(TokenVersion, value)
	}
}

// WordMatcher matches a run of visible characters other than colon. The run is
// a Word when every character is a tchar and Text otherwise.
func WordMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		allTchar := true

		for {
			r, ok := stream.PeekChar()
			if !ok || !isWordRune(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
			allTchar = allTchar && isTchar(r)
		}

		if len(value) == 0 {
			return nil
		}
		if allTchar {
			return tokenizer.NewToken(TokenWord, value)
		}
		return tokenizer.NewToken(TokenText, value)
	}
}

// InvalidMatcher consumes any single character. It is the last matcher, so the
// tokenizer always makes progress on control bytes.
func InvalidMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenInvalid, []rune{r})
	}
}

// isWordRune reports visible characters (obs-text included) other than colon.
func isWordRune(r rune) bool {
	return r > 0x20 && r != 0x7f && r != ':'
}

func isTchar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
