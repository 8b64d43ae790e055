package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"msview/internal/parse"
)

func diagram(t *testing.T, expr string) []string {
	t.Helper()
	n, err := parse.Parse(expr)
	require.NoError(t, err)
	out, err := Diagram(n, Options{})
	require.NoError(t, err)
	return strings.Split(out, "\n")
}

// cell returns the rune at col of line, or ' ' past its end.
func cell(line string, col int) rune {
	rs := []rune(line)
	if col >= len(rs) {
		return ' '
	}
	return rs[col]
}

func TestRenderTwoChildren(t *testing.T) {
	lines := diagram(t, "and(pk(A),pk(B))")
	want := []string{
		"    and",
		"  ┌──┼─────┐",
		"pk(A)    pk(B)",
	}
	require.Equal(t, want, lines)
}

func TestRenderSingleChild(t *testing.T) {
	lines := diagram(t, "wsh(and(pk(A),pk(B)))")
	want := []string{
		"    wsh",
		"     │",
		"    and",
		"  ┌──┼─────┐",
		"pk(A)    pk(B)",
	}
	require.Equal(t, want, lines)
}

func TestRenderThreeChildren(t *testing.T) {
	lines := diagram(t, "thresh(2,pk(A),pk(B),pk(C))")
	require.Len(t, lines, 3)
	require.Equal(t, strings.Repeat(" ", 9)+"thresh(2 of 3)", lines[0])
	require.Equal(t, "pk(A)    pk(B)    pk(C)", lines[2])

	conn := lines[1]
	require.Equal(t, '┌', cell(conn, 2))
	require.Equal(t, '┬', cell(conn, 11))
	require.Equal(t, '┼', cell(conn, 15))
	require.Equal(t, '┐', cell(conn, 20))
	for _, col := range []int{3, 10, 12, 14, 16, 19} {
		require.Equal(t, '─', cell(conn, col), "column %d", col)
	}
	require.Equal(t, 21, len([]rune(conn)))
}

func TestRenderParentOnSpanEnd(t *testing.T) {
	// The parent's center coincides with the first child's center.
	root := &Node{
		Text:     "x",
		Position: 2,
		Children: []*Node{
			{Text: "abcde", Depth: 1, Position: 0, RightmostExtent: 5},
			{Text: "f", Depth: 1, Position: 9, RightmostExtent: 10},
		},
		RightmostExtent: 10,
	}
	lines := strings.Split(Render(root), "\n")
	require.Equal(t, "  ├──────┐", lines[1])
}

func TestRenderParentPastSpan(t *testing.T) {
	// The label is wider than the children, so its center is right of the
	// span and gets no cross.
	lines := diagram(t, "multi(1,A,B)")
	want := []string{
		"  multi(1 of 2)",
		"┌────┐",
		"A    B",
	}
	require.Equal(t, want, lines)
}

func TestRenderRowsTrimmed(t *testing.T) {
	lines := diagram(t, "or_d(pk(LongKeyName),and_v(v:pk(B),older(144)))")
	require.Len(t, lines, 5)
	for i, line := range lines {
		require.Equal(t, strings.TrimRight(line, " "), line, "row %d has trailing blanks", i)
	}
}

func TestRenderTerminal(t *testing.T) {
	require.Equal(t, []string{"A"}, diagram(t, "A"))
}

func TestRenderNil(t *testing.T) {
	require.Equal(t, "", Render(nil))
	out, err := Diagram(parse.Empty(), Options{})
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestRenderWideRunes(t *testing.T) {
	root := &Node{Text: "鍵鍵", Position: 0, RightmostExtent: 4}
	require.Equal(t, "鍵鍵", Render(root))
}

func TestRenderKeepsNul(t *testing.T) {
	root := &Node{Text: "a\x00b", Position: 0, RightmostExtent: 3}
	require.Equal(t, "a\x00b", Render(root))
}

func TestRenderTaproot(t *testing.T) {
	n, err := parse.ParseTaproot("tr(K,{pk(A),pk(B)})")
	require.NoError(t, err)
	out, err := Diagram(n, Options{})
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "tr(K)")
	require.Contains(t, lines[1], "│")
	require.Contains(t, lines[2], "{}")
	require.Equal(t, "pk(A)    pk(B)", lines[4])
}
