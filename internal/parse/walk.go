package parse

// Leaves collects the KTapLeaf nodes under n in left-to-right order.
func Leaves(n *Node) []*Node {
	if n == nil {
		return nil
	}
	if n.Kind == KTapLeaf {
		return []*Node{n}
	}
	var out []*Node
	for _, child := range n.Children() {
		out = append(out, Leaves(child)...)
	}
	return out
}

// Terminals collects the values of terminal nodes in preorder.
func Terminals(n *Node) []string {
	if n == nil {
		return nil
	}
	var out []string
	if n.Kind == KTerminal {
		out = append(out, n.Tok)
	}
	for _, child := range n.Children() {
		out = append(out, Terminals(child)...)
	}
	return out
}
