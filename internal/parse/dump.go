package parse

import (
	"fmt"
	"strings"
)

// Dump returns a readable representation of an AST.
func Dump(n *Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *Node, indent int) {
	if n == nil {
		return
	}
	pad := strings.Repeat(" ", indent)
	fmt.Fprintf(b, "%s- %s\n", pad, nodeLine(n))
	switch n.Kind {
	case KTapBranch:
		fmt.Fprintf(b, "%s  LEFT->\n", pad)
		dumpNode(b, n.Left, indent+4)
		fmt.Fprintf(b, "%s  RIGHT->\n", pad)
		dumpNode(b, n.Right, indent+4)
	default:
		for _, child := range n.Children() {
			dumpNode(b, child, indent+4)
		}
	}
}

func nodeLine(n *Node) string {
	parts := []string{kindName(n.Kind)}
	switch n.Kind {
	case KTerminal:
		parts = append(parts, "value="+n.Tok)
	case KWrapper:
		parts = append(parts, "tags="+n.Tok)
	case KFragment:
		parts = append(parts, "name="+n.Tok, fmt.Sprintf("args=%d", len(n.List)))
		if note := Annotate(n); note != "" {
			parts = append(parts, "note="+note)
		}
	case KTapRoot:
		parts = append(parts, "key="+n.Tok)
	case KTapLeaf:
		parts = append(parts, "script="+n.Tok)
	}
	parts = append(parts, fmt.Sprintf("pos=%d", n.Pos))
	return strings.Join(parts, " ")
}

func kindName(k Kind) string {
	return strings.ToUpper(k.String())
}
