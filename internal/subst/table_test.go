package subst

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableParentLookup(t *testing.T) {
	parent := NewTable(nil)
	parent.Set("A", "02aa")
	parent.Set("B", "02bb")
	child := NewTable(parent)
	child.Set("B", "03bb")

	v, ok := child.Lookup("A")
	require.True(t, ok)
	require.Equal(t, "02aa", v)
	require.Equal(t, "03bb", child.Get("B"))
	require.Equal(t, "02bb", parent.Get("B"))

	_, ok = child.Lookup("C")
	require.False(t, ok)
	require.Equal(t, []string{"A", "B"}, child.Names())
	require.Equal(t, 2, child.Len())
}

func TestTableUnsetKeepsParent(t *testing.T) {
	parent := NewTable(nil)
	parent.Set("A", "02aa")
	child := NewTable(parent)
	child.Set("A", "03aa")
	child.Unset("A")
	require.Equal(t, "02aa", child.Get("A"))
}

func TestNilTable(t *testing.T) {
	var tbl *Table
	_, ok := tbl.Lookup("A")
	require.False(t, ok)
	require.Empty(t, tbl.Names())
	require.Zero(t, tbl.Len())
	tbl.Set("A", "x")
	tbl.Unset("A")
}

func TestTableReverse(t *testing.T) {
	tbl := NewTable(nil)
	tbl.Set("A", "02aa")
	tbl.Set("B", "02bb")
	tbl.Set("Z", "02aa")
	rev := tbl.Reverse()
	require.Equal(t, "A", rev.Get("02aa"))
	require.Equal(t, "B", rev.Get("02bb"))
	require.Equal(t, 2, rev.Len())
}

func TestTableMatch(t *testing.T) {
	tbl := NewTable(nil)
	for _, name := range []string{"Alice", "Bob", "Alex", "Carol"} {
		tbl.Set(name, "x")
	}
	require.Equal(t, []string{"Alex", "Alice"}, tbl.Match("Al*"))
	require.Equal(t, []string{"Alex", "Alice", "Carol"}, tbl.Match("Al*", "C?rol"))
	require.Len(t, tbl.Match(), 4)
	require.Empty(t, tbl.Match("[", "Z*"))
}

func TestParseAssignment(t *testing.T) {
	name, value, err := ParseAssignment("  Alice = xpub6D/0/*=x ")
	require.NoError(t, err)
	require.Equal(t, "Alice", name)
	require.Equal(t, "xpub6D/0/*=x", value)

	for _, bad := range []string{"Alice", "=02aa", "1A=02aa", "pk(A)=x", "A="} {
		_, _, err := ParseAssignment(bad)
		require.Error(t, err, bad)
	}
}

func TestLoad(t *testing.T) {
	input := "# keys\n\nA=02aa\n  B = 02bb\n"
	tbl := NewTable(nil)
	require.NoError(t, Load(tbl, strings.NewReader(input)))
	require.Equal(t, "02aa", tbl.Get("A"))
	require.Equal(t, "02bb", tbl.Get("B"))

	err := Load(NewTable(nil), strings.NewReader("A=1\nbogus\n"))
	require.ErrorContains(t, err, "line 2")
}
