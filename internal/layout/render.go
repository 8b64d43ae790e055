package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// margin is the number of spare columns allocated right of the widest
// subtree.
const margin = 2

// Connector glyphs.
const (
	glyphVertical   = '│'
	glyphHorizontal = '─'
	glyphLeftEnd    = '┌'
	glyphRightEnd   = '┐'
	glyphTee        = '┬'
	glyphCross      = '┼'
	glyphLeftCross  = '├'
	glyphRightCross = '┤'
)

// wideTail marks the cell covered by the second half of a wide rune.
const wideTail rune = -1

// Render draws a positioned tree. Even rows carry node text, odd rows the
// connectors between a depth and the next. Trailing blanks are trimmed
// from every row; a nil tree renders as "".
func Render(root *Node) string {
	if root == nil {
		return ""
	}
	g := newGrid(2*MaxDepth(root)+1, root.RightmostExtent+margin)
	Walk(root, func(n *Node) {
		g.text(n.Depth*2, n.Position, n.Text)
		connect(g, n)
	})
	return g.String()
}

// center is the column a connector attaches to for n.
func center(n *Node) int {
	w := runewidth.StringWidth(n.Text)
	if w <= 1 {
		return n.Position
	}
	return n.Position + (w-1)/2
}

func connect(g *grid, n *Node) {
	row := n.Depth*2 + 1
	switch len(n.Children) {
	case 0:
		return
	case 1:
		g.set(row, (center(n)+center(n.Children[0]))/2, glyphVertical)
		return
	}

	left := center(n.Children[0])
	right := center(n.Children[len(n.Children)-1])
	for col := left; col <= right; col++ {
		g.set(row, col, glyphHorizontal)
	}
	for _, c := range n.Children[1 : len(n.Children)-1] {
		g.set(row, center(c), glyphTee)
	}
	g.set(row, left, glyphLeftEnd)
	g.set(row, right, glyphRightEnd)

	// A parent label wider than its children can sit off the span.
	switch pc := center(n); {
	case pc < left || pc > right:
	case pc == left:
		g.set(row, pc, glyphLeftCross)
	case pc == right:
		g.set(row, pc, glyphRightCross)
	default:
		g.set(row, pc, glyphCross)
	}
}

// grid is a fixed-size buffer of terminal cells.
type grid struct {
	cells [][]rune
}

func newGrid(rows, cols int) *grid {
	g := &grid{cells: make([][]rune, rows)}
	for i := range g.cells {
		row := make([]rune, cols)
		for j := range row {
			row[j] = ' '
		}
		g.cells[i] = row
	}
	return g
}

func (g *grid) set(row, col int, r rune) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return
	}
	g.cells[row][col] = r
}

// text stamps s starting at col. Runes two cells wide also claim the cell
// after them.
func (g *grid) text(row, col int, s string) {
	for _, r := range s {
		g.set(row, col, r)
		col++
		if runewidth.RuneWidth(r) == 2 {
			g.set(row, col, wideTail)
			col++
		}
	}
}

func (g *grid) String() string {
	lines := make([]string, len(g.cells))
	var b strings.Builder
	for i, row := range g.cells {
		b.Reset()
		for _, r := range row {
			if r != wideTail {
				b.WriteRune(r)
			}
		}
		lines[i] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}
