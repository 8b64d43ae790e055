// Package layout positions an expression tree on a character grid and
// renders it as a box-drawing diagram.
package layout

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"msview/internal/parse"
)

// MinGap is the number of blank columns kept between sibling subtrees.
const MinGap = 4

// Node is a display node with its grid placement. Position is the column
// where Text starts and RightmostExtent the first column right of the
// subtree.
type Node struct {
	Text            string
	Depth           int
	Position        int
	RightmostExtent int
	Children        []*Node
}

// Options controls how AST nodes turn into display text.
type Options struct {
	// Names substitutes symbolic names in labels. It may be nil.
	Names parse.Names
	// Annotate appends the fragment's display hint to its label.
	Annotate bool
	// ExpandLeaves parses taproot leaf scripts and draws them as subtrees.
	ExpandLeaves bool
}

// Build computes the positioned tree for n. The Empty sentinel yields a
// nil tree and no error.
func Build(n *parse.Node, opts Options) (*Node, error) {
	if n.IsEmpty() {
		return nil, nil
	}
	b := &builder{opts: opts}
	if opts.ExpandLeaves {
		scripts, err := parse.ParseLeafScripts(n)
		if err != nil {
			return nil, err
		}
		b.scripts = make(map[*parse.Node]*parse.Node, len(scripts))
		for i, leaf := range parse.Leaves(n) {
			b.scripts[leaf] = scripts[i]
		}
	}
	root, err := b.place(n, 0, 0)
	if err != nil {
		return nil, err
	}
	log.Tracef("Laid out %d nodes over %d columns", b.count, root.RightmostExtent)
	return root, nil
}

type builder struct {
	opts  Options
	count int
	// scripts maps taproot leaves to their parsed scripts when leaves
	// are expanded.
	scripts map[*parse.Node]*parse.Node
}

// place lays out the subtree of n with its leftmost column at start.
func (b *builder) place(n *parse.Node, depth, start int) (*Node, error) {
	if depth > parse.MaxDepth {
		return nil, parse.Error{
			ErrorCode:   parse.ErrTooDeep,
			Pos:         n.Pos,
			Description: fmt.Sprintf("tree deeper than %d", parse.MaxDepth),
		}
	}
	if script, ok := b.scripts[n]; ok && !script.IsEmpty() {
		return b.place(script, depth, start)
	}

	text, kids := describe(n, b.opts.Names)
	if b.opts.Annotate {
		if note := parse.Annotate(n); note != "" {
			text += " [" + note + "]"
		}
	}
	b.count++

	out := &Node{Text: text, Depth: depth}
	cursor := start
	for _, k := range kids {
		child, err := b.place(k, depth+1, cursor)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, child)
		cursor = child.RightmostExtent + MinGap
	}

	width := runewidth.StringWidth(text)
	if len(out.Children) == 0 {
		out.Position = start
		out.RightmostExtent = start + width
		return out, nil
	}
	first, last := out.Children[0], out.Children[len(out.Children)-1]
	out.Position = (first.Position + last.Position) / 2
	out.RightmostExtent = max(out.Position+width, last.RightmostExtent)
	return out, nil
}

// Diagram lays out n and renders it in one step.
func Diagram(n *parse.Node, opts Options) (string, error) {
	root, err := Build(n, opts)
	if err != nil {
		return "", err
	}
	return Render(root), nil
}

// MaxDepth returns the deepest Depth in the tree rooted at n, or -1 for a
// nil tree.
func MaxDepth(n *Node) int {
	if n == nil {
		return -1
	}
	d := n.Depth
	for _, c := range n.Children {
		d = max(d, MaxDepth(c))
	}
	return d
}

// Walk calls fn for every node in preorder.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
