package layout

import (
	"fmt"
	"strings"

	"msview/internal/parse"
)

// describe returns the display text for n and the AST nodes drawn below
// it. Wrappers fold into their child's text, counted fragments show their
// count, and fragments over terminals collapse into a single label.
func describe(n *parse.Node, names parse.Names) (string, []*parse.Node) {
	switch n.Kind {
	case parse.KTerminal:
		return parse.Substitute(n.Tok, names), nil
	case parse.KWrapper:
		inner, tags := n.Unwrap()
		if inner == nil {
			return tags + ":", nil
		}
		text, kids := describe(inner, names)
		return tags + ":" + text, kids
	case parse.KFragment:
		return describeFragment(n, names)
	case parse.KTapRoot:
		return "tr(" + parse.Substitute(n.Tok, names) + ")", n.List
	case parse.KTapBranch:
		return "{}", []*parse.Node{n.Left, n.Right}
	case parse.KTapLeaf:
		return parse.Substitute(n.Tok, names), nil
	default:
		return "", nil
	}
}

func describeFragment(n *parse.Node, names parse.Names) (string, []*parse.Node) {
	if count, kids, ok := n.Threshold(); ok && len(kids) > 0 {
		return fmt.Sprintf("%s(%s of %d)", n.Tok, parse.Substitute(count, names), len(kids)), kids
	}
	args := make([]string, 0, len(n.List))
	for _, a := range n.List {
		if a.Kind != parse.KTerminal {
			return n.Tok, n.List
		}
		args = append(args, parse.Substitute(a.Tok, names))
	}
	return n.Tok + "(" + strings.Join(args, ",") + ")", nil
}
