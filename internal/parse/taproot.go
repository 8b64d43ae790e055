package parse

import (
	"fmt"
	"strings"
)

// ParseTaproot parses a taproot descriptor such as
// "tr(NUMS,{pk(A),{pk(B),pk(C)}})#checksum" into a KTapRoot node. The tr()
// wrapper and the checksum are optional. Leaf scripts are kept unparsed.
func ParseTaproot(desc string) (*Node, error) {
	if desc == "" {
		return Empty(), nil
	}
	key, tree, keyOff, treeOff, err := splitDescriptor(desc)
	if err != nil {
		log.Debugf("Rejected descriptor %q: %v", desc, err)
		return nil, err
	}
	root := Root(key, nil)
	root.Pos = keyOff
	if treeOff < 0 {
		return root, nil
	}
	p := &parser{src: desc}
	t, err := p.tree(tree, treeOff, 1)
	if err != nil {
		log.Debugf("Rejected descriptor %q: %v", desc, err)
		return nil, err
	}
	root.List = []*Node{t}
	return root, nil
}

// SplitDescriptor separates a taproot descriptor into its internal key and
// its optional bracket tree. hasTree is false for key-path-only
// descriptors such as "tr(K)".
func SplitDescriptor(desc string) (key, tree string, hasTree bool, err error) {
	key, tree, _, treeOff, err := splitDescriptor(desc)
	if err != nil {
		return "", "", false, err
	}
	return key, tree, treeOff >= 0, nil
}

// splitDescriptor returns the key and tree along with their byte offsets in
// desc; treeOff is -1 when there is no tree.
func splitDescriptor(desc string) (key, tree string, keyOff, treeOff int, err error) {
	body := stripChecksum(desc)
	if err := CheckBalanced(body, Parens|Braces); err != nil {
		return "", "", 0, -1, shiftError(err, desc, 0)
	}
	if strings.HasPrefix(body, "tr(") && matchingClose(body, 2, Parens) == len(body)-1 {
		body = body[3 : len(body)-1]
		keyOff = 3
	}

	i, err := IndexTopLevel(body, ',', Parens)
	if err != nil {
		return "", "", 0, -1, shiftError(err, desc, keyOff)
	}
	if i < 0 {
		key, treeOff = body, -1
	} else {
		key, tree, treeOff = body[:i], body[i+1:], keyOff+i+1
	}
	if key == "" {
		return "", "", 0, -1, parseError(ErrEmptyArgument, desc, keyOff,
			"missing internal key")
	}
	if treeOff >= 0 && tree == "" {
		return "", "", 0, -1, parseError(ErrEmptyArgument, desc, treeOff,
			"missing script tree after ','")
	}
	return key, tree, keyOff, treeOff, nil
}

// stripChecksum drops a trailing "#xxxxxxxx" descriptor checksum.
func stripChecksum(desc string) string {
	i := strings.LastIndexByte(desc, '#')
	if i < 0 || i == len(desc)-1 {
		return desc
	}
	for _, r := range desc[i+1:] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return desc
		}
	}
	return desc[:i]
}

// ParseBracketTree parses the "{left,right}" notation. Sides that are not
// themselves brace-wrapped become leaves holding the raw script. A string
// with no top-level comma is a single leaf.
func ParseBracketTree(s string) (*Node, error) {
	if s == "" {
		return Empty(), nil
	}
	if err := CheckBalanced(s, Parens|Braces); err != nil {
		return nil, err
	}
	p := &parser{src: s}
	return p.tree(s, 0, 0)
}

func (p *parser) tree(s string, off, depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, parseError(ErrTooDeep, p.src, off,
			fmt.Sprintf("tree deeper than %d", MaxDepth))
	}
	if s == "" {
		return nil, parseError(ErrEmptyArgument, p.src, off, "empty tree branch")
	}
	if !isBraceWrapped(s) {
		leaf := Leaf(s)
		leaf.Pos = off
		return leaf, nil
	}

	inner := s[1 : len(s)-1]
	i, err := IndexTopLevel(inner, ',', Parens|Braces)
	if err != nil {
		return nil, shiftError(err, p.src, off+1)
	}
	if i < 0 {
		return p.tree(inner, off+1, depth+1)
	}
	left, err := p.tree(inner[:i], off+1, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := p.tree(inner[i+1:], off+i+2, depth+1)
	if err != nil {
		return nil, err
	}
	b := Branch(left, right)
	b.Pos = off
	return b, nil
}

func isBraceWrapped(s string) bool {
	return len(s) >= 2 && s[0] == '{' && matchingClose(s, 0, Parens|Braces) == len(s)-1
}

// ParseLeafScripts parses the script of every leaf under n with Parse, in
// left-to-right order. The first failure is returned with the index of the
// leaf that caused it.
func ParseLeafScripts(n *Node) ([]*Node, error) {
	leaves := Leaves(n)
	out := make([]*Node, 0, len(leaves))
	for i, leaf := range leaves {
		script, err := Parse(leaf.Tok)
		if err != nil {
			return nil, fmt.Errorf("leaf %d: %w", i, err)
		}
		out = append(out, script)
	}
	return out, nil
}
