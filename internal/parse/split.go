package parse

// Brackets selects which bracket families count towards nesting depth.
type Brackets uint8

const (
	Parens Brackets = 1 << iota
	Braces
)

func (b Brackets) closerFor(c byte) (byte, bool) {
	switch {
	case c == '(' && b&Parens != 0:
		return ')', true
	case c == '{' && b&Braces != 0:
		return '}', true
	}
	return 0, false
}

func (b Brackets) isCloser(c byte) bool {
	return (c == ')' && b&Parens != 0) || (c == '}' && b&Braces != 0)
}

// noDelim makes scan check the whole string without stopping.
const noDelim = -1

// IndexTopLevel returns the index of the first delim in s found at nesting
// depth zero for the tracked bracket family, or -1 when s is a single
// logical unit. Brackets outside the family are ordinary characters.
//
// An ErrUnbalanced error is returned when a closer has no matching opener,
// or when no delimiter is found and an opener is left unclosed.
func IndexTopLevel(s string, delim byte, fam Brackets) (int, error) {
	return scan(s, int(delim), fam)
}

// scan walks s tracking the bracket family on a stack. delim is a byte
// value, or noDelim.
func scan(s string, delim int, fam Brackets) (int, error) {
	var stack []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if int(c) == delim && len(stack) == 0 {
			return i, nil
		}
		if closer, ok := fam.closerFor(c); ok {
			stack = append(stack, closer)
			continue
		}
		if fam.isCloser(c) {
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return -1, parseError(ErrUnbalanced, s, i,
					"unexpected '"+string(c)+"'")
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return -1, parseError(ErrUnbalanced, s, len(s),
			"missing '"+string(stack[len(stack)-1])+"'")
	}
	return -1, nil
}

// SplitTopLevel splits s at every delim found at depth zero. The result
// always has at least one element; empty segments are kept so callers can
// reject them.
func SplitTopLevel(s string, delim byte, fam Brackets) ([]string, error) {
	var out []string
	rest := s
	for {
		i, err := IndexTopLevel(rest, delim, fam)
		if err != nil {
			return nil, shiftError(err, s, len(s)-len(rest))
		}
		if i < 0 {
			return append(out, rest), nil
		}
		out = append(out, rest[:i])
		rest = rest[i+1:]
	}
}

// CheckBalanced validates that every opener of the family in s is closed
// in order.
func CheckBalanced(s string, fam Brackets) error {
	_, err := scan(s, noDelim, fam)
	return err
}

// matchingClose returns the index of the closer matching the opener at
// s[open], or -1.
func matchingClose(s string, open int, fam Brackets) int {
	depth := 0
	for i := open; i < len(s); i++ {
		if _, ok := fam.closerFor(s[i]); ok {
			depth++
			continue
		}
		if fam.isCloser(s[i]) {
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// shiftError rebases the position of a parse Error found in a substring
// that starts at offset within expr.
func shiftError(err error, expr string, offset int) error {
	perr, ok := err.(Error)
	if !ok {
		return err
	}
	perr.Pos += offset
	perr.Expr = expr
	return perr
}
