package parse

import (
	"strings"
	"unicode"
)

// Names maps symbolic names to display values. The parser never consults
// it; only the formatting and layout entry points that take one do.
type Names interface {
	Lookup(name string) (string, bool)
}

// Grammar distinguishes the expression languages the formatter knows. The
// only difference between them is which calls spread their arguments over
// several lines.
type Grammar struct {
	Name      string
	MultiLine map[string]bool
}

var (
	// Miniscript is the fragment language, e.g. "and_v(v:pk(A),pk(B))".
	Miniscript = Grammar{
		Name: "miniscript",
		MultiLine: nameSet("and_v", "and_b", "and_n", "andor",
			"or_b", "or_c", "or_d", "or_i", "thresh"),
	}

	// Policy is the policy language, e.g. "or(99@pk(A),pk(B))".
	Policy = Grammar{
		Name:      "policy",
		MultiLine: nameSet("and", "or", "thresh"),
	}
)

const indentUnit = "  "

func nameSet(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Format pretty-prints expr. Whitespace in the input is ignored, so
// Compact(g.Format(e)) == Compact(e) for every input, balanced or not.
func (g Grammar) Format(expr string) string {
	return g.format(Tokenize(Compact(expr)), nil)
}

// FormatNames is Format with every name token replaced through names.
func (g Grammar) FormatNames(expr string, names Names) string {
	return g.format(Tokenize(Compact(expr)), names)
}

func (g Grammar) format(toks []Token, names Names) string {
	var b strings.Builder
	depth := 0
	newline := func() {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indentUnit, max(depth, 0)))
	}
	for i, t := range toks {
		switch t.Kind {
		case TokName:
			b.WriteString(substituteName(t.Text, names))
		case TokOpen:
			depth++
			b.WriteByte('(')
			if i > 0 && toks[i-1].Kind == TokName && g.isMultiLine(toks[i-1].Text) &&
				i+1 < len(toks) && toks[i+1].Kind != TokClose {
				newline()
			}
		case TokComma:
			b.WriteByte(',')
			if depth > 0 {
				newline()
			}
		case TokClose:
			depth--
			if i > 0 && toks[i-1].Kind == TokClose {
				newline()
			}
			b.WriteByte(')')
		}
	}
	return b.String()
}

// isMultiLine matches the call name after any wrapper tags ("v:") and
// policy weight ("9@").
func (g Grammar) isMultiLine(name string) bool {
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '@'); i >= 0 {
		name = name[i+1:]
	}
	return g.MultiLine[name]
}

// Compact removes all whitespace from s.
func Compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Substitute replaces every name token of expr found in names. Punctuation
// and unmatched names are copied unchanged.
func Substitute(expr string, names Names) string {
	if names == nil {
		return expr
	}
	toks := Tokenize(expr)
	for i, t := range toks {
		if t.Kind == TokName {
			toks[i].Text = substituteName(t.Text, names)
		}
	}
	return joinTokens(toks)
}

func substituteName(name string, names Names) string {
	if names == nil {
		return name
	}
	if v, ok := names.Lookup(name); ok {
		return v
	}
	return name
}
