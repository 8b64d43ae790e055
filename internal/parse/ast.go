package parse

// Kind represents the AST node kind.
type Kind int

const (
	KEmpty Kind = iota
	KTerminal
	KWrapper
	KFragment
	KTapRoot
	KTapBranch
	KTapLeaf
)

func (k Kind) String() string {
	switch k {
	case KEmpty:
		return "empty"
	case KTerminal:
		return "terminal"
	case KWrapper:
		return "wrapper"
	case KFragment:
		return "fragment"
	case KTapRoot:
		return "taproot"
	case KTapBranch:
		return "branch"
	case KTapLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// Node is the AST shared by the expression and bracket-tree parsers.
//
// Tok holds the terminal value, the wrapper tag run, the fragment name,
// the taproot internal key or the raw leaf script depending on Kind.
// Wrappers keep their child in Left; branches use Left and Right;
// fragments keep their arguments in List and taproot roots keep their
// optional tree as the only List entry.
type Node struct {
	Kind        Kind
	Tok         string
	Pos         int
	Left, Right *Node
	List        []*Node
}

// Empty constructs the sentinel returned for empty input.
func Empty() *Node {
	return &Node{Kind: KEmpty}
}

// T constructs a terminal node.
func T(s string) *Node {
	return &Node{Kind: KTerminal, Tok: s}
}

// Wrap constructs a wrapper node applying tags to child.
func Wrap(tags string, child *Node) *Node {
	return &Node{Kind: KWrapper, Tok: tags, Left: child}
}

// F constructs a fragment node. Nil arguments are skipped.
func F(name string, args ...*Node) *Node {
	n := &Node{Kind: KFragment, Tok: name, List: []*Node{}}
	for _, a := range args {
		if a != nil {
			n.List = append(n.List, a)
		}
	}
	return n
}

// Root constructs a taproot root. A nil tree means key-path only.
func Root(key string, tree *Node) *Node {
	n := &Node{Kind: KTapRoot, Tok: key}
	if tree != nil {
		n.List = []*Node{tree}
	}
	return n
}

// Branch constructs a binary taproot branch.
func Branch(left, right *Node) *Node {
	return &Node{Kind: KTapBranch, Left: left, Right: right}
}

// Leaf constructs a taproot leaf holding an unparsed script.
func Leaf(script string) *Node {
	return &Node{Kind: KTapLeaf, Tok: script}
}

// IsEmpty reports whether n is nil or the empty sentinel.
func (n *Node) IsEmpty() bool {
	return n == nil || n.Kind == KEmpty
}

// Children returns the ordered children of n regardless of kind.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KWrapper:
		if n.Left == nil {
			return nil
		}
		return []*Node{n.Left}
	case KTapBranch:
		return []*Node{n.Left, n.Right}
	case KFragment, KTapRoot:
		return n.List
	default:
		return nil
	}
}

// Unwrap strips any wrapper nodes and returns the wrapped node together
// with the concatenated tag run.
func (n *Node) Unwrap() (*Node, string) {
	tags := ""
	for n != nil && n.Kind == KWrapper {
		tags += n.Tok
		n = n.Left
	}
	return n, tags
}

// Threshold splits a counted fragment (thresh, multi and friends) into its
// count argument and the uniform children that follow it. ok is false for
// any other node or when the fragment has no arguments at all.
func (n *Node) Threshold() (count string, children []*Node, ok bool) {
	if n == nil || n.Kind != KFragment || len(n.List) == 0 {
		return "", nil, false
	}
	info, known := Lookup(n.Tok)
	if !known || !info.Counted {
		return "", nil, false
	}
	first := n.List[0]
	if first.Kind != KTerminal {
		return "", nil, false
	}
	return first.Tok, n.List[1:], true
}
