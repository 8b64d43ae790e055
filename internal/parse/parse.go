package parse

import (
	"fmt"
	"strings"
)

// MaxDepth bounds the nesting accepted by the parsers and the layout.
const MaxDepth = 256

// wrapperAlphabet lists the single-letter wrapper tags.
const wrapperAlphabet = "asctdvjnlu"

// Parse parses a function-call expression such as "and_v(v:pk(A),older(9))".
//
// The input is taken literally; callers remove whitespace first. An empty
// string yields the Empty sentinel and a nil error. Unknown fragment names
// are accepted.
func Parse(expr string) (*Node, error) {
	if expr == "" {
		return Empty(), nil
	}
	if err := CheckBalanced(expr, Parens); err != nil {
		log.Debugf("Rejected %q: %v", expr, err)
		return nil, err
	}
	p := &parser{src: expr}
	n, err := p.node(expr, 0, 0)
	if err != nil {
		log.Debugf("Rejected %q: %v", expr, err)
		return nil, err
	}
	log.Tracef("Parsed %q into %d nodes", expr, countNodes(n))
	return n, nil
}

type parser struct {
	src string
}

func (p *parser) node(expr string, off, depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, parseError(ErrTooDeep, p.src, off,
			fmt.Sprintf("nesting deeper than %d", MaxDepth))
	}
	if expr == "" {
		return nil, parseError(ErrEmptyArgument, p.src, off, "empty expression")
	}

	if tags, rest, ok := splitWrapper(expr); ok {
		if i := strings.IndexFunc(tags, notWrapperTag); i >= 0 {
			return nil, parseError(ErrUnknownWrapper, p.src, off+i,
				fmt.Sprintf("unknown wrapper %q", tags[i]))
		}
		if rest == "" {
			return nil, parseError(ErrDanglingWrapper, p.src, off+len(tags),
				fmt.Sprintf("wrapper %q has nothing to wrap", tags+":"))
		}
		child, err := p.node(rest, off+len(tags)+1, depth+1)
		if err != nil {
			return nil, err
		}
		w := Wrap(tags, child)
		w.Pos = off
		return w, nil
	}

	if open := strings.IndexByte(expr, '('); open > 0 && isFragmentName(expr[:open]) &&
		matchingClose(expr, open, Parens) == len(expr)-1 {

		args, err := p.arguments(expr[open+1:len(expr)-1], off+open+1, depth+1)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KFragment, Tok: expr[:open], Pos: off, List: args}, nil
	}

	return &Node{Kind: KTerminal, Tok: expr, Pos: off}, nil
}

// arguments parses the comma separated list found between a fragment's
// parentheses. An empty list is valid; an empty element is not.
func (p *parser) arguments(s string, off, depth int) ([]*Node, error) {
	args := []*Node{}
	if s == "" {
		return args, nil
	}
	segs, err := SplitTopLevel(s, ',', Parens)
	if err != nil {
		return nil, shiftError(err, p.src, off)
	}
	for _, seg := range segs {
		if seg == "" {
			return nil, parseError(ErrEmptyArgument, p.src, off, "empty argument")
		}
		n, err := p.node(seg, off, depth)
		if err != nil {
			return nil, err
		}
		args = append(args, n)
		off += len(seg) + 1
	}
	return args, nil
}

// splitWrapper splits "tags:rest" when a colon appears before the first
// parenthesis and everything before it is lowercase letters.
func splitWrapper(expr string) (tags, rest string, ok bool) {
	colon := strings.IndexByte(expr, ':')
	if colon <= 0 {
		return "", "", false
	}
	if open := strings.IndexByte(expr, '('); open >= 0 && open < colon {
		return "", "", false
	}
	for i := 0; i < colon; i++ {
		if c := expr[i]; c < 'a' || c > 'z' {
			return "", "", false
		}
	}
	return expr[:colon], expr[colon+1:], true
}

func notWrapperTag(r rune) bool {
	return !strings.ContainsRune(wrapperAlphabet, r)
}

// isFragmentName reports whether s looks like a lowercase identifier.
func isFragmentName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children() {
		total += countNodes(c)
	}
	return total
}
