package parse

import "strings"

// TokenKind classifies a token of the function-call grammar.
type TokenKind int

const (
	TokName TokenKind = iota
	TokOpen
	TokClose
	TokComma
)

func (k TokenKind) String() string {
	switch k {
	case TokName:
		return "name"
	case TokOpen:
		return "("
	case TokClose:
		return ")"
	case TokComma:
		return ","
	default:
		return "?"
	}
}

// Token is one atom of an expression. Pos is its byte offset.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// Tokenize splits s into name fragments and the punctuation "(", ")" and
// ",". Whitespace is not special; callers compact their input first.
// Bracket balance is not checked here.
func Tokenize(s string) []Token {
	var out []Token
	start := 0
	flush := func(end int) {
		if end > start {
			out = append(out, Token{Kind: TokName, Text: s[start:end], Pos: start})
		}
	}
	for i := 0; i < len(s); i++ {
		kind, ok := punctKind(s[i])
		if !ok {
			continue
		}
		flush(i)
		out = append(out, Token{Kind: kind, Text: s[i : i+1], Pos: i})
		start = i + 1
	}
	flush(len(s))
	return out
}

func punctKind(c byte) (TokenKind, bool) {
	switch c {
	case '(':
		return TokOpen, true
	case ')':
		return TokClose, true
	case ',':
		return TokComma, true
	default:
		return TokName, false
	}
}

// joinTokens is the inverse of Tokenize.
func joinTokens(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text)
	}
	return b.String()
}
