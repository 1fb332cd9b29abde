package http

import (
	"github.com/shapestone/shape-preamble/internal/tokenizer"
)

// Lexical token kinds reported by Lex.
const (
	LexLineEnd = tokenizer.TokenLineEnd
	LexWS      = tokenizer.TokenWS
	LexColon   = tokenizer.TokenColon
	LexVersion = tokenizer.TokenVersion
	LexToken   = tokenizer.TokenWord
	LexText    = tokenizer.TokenText
	LexInvalid = tokenizer.TokenInvalid
)

// Token is one lexical token of a preamble.
type Token struct {
	Kind  string
	Value string
}

// Lex splits input into lexical tokens without applying the grammar. It is
// meant for diagnostics: Invalid tokens point at bytes the parser would
// reject. The bool reports whether the whole input was consumed.
func Lex(input string) ([]Token, bool) {
	toks, ok := tokenizer.Lex(input)
	out := make([]Token, len(toks))
	for i, t := range toks {
		out[i] = Token{Kind: t.Kind(), Value: t.ValueString()}
	}
	return out, ok
}
