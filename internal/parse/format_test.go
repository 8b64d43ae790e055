package parse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type mapNames map[string]string

func (m mapNames) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

var formatInputs = []string{
	"",
	"A",
	"pk(A)",
	"and_v(v:pk(A),pk(B))",
	"or_d(pk(A),and_v(v:pkh(B),older(144)))",
	"thresh(2,pk(A),s:pk(B),sln:older(12960))",
	"andor(pk(A),or_i(and_v(v:pkh(B),hash160(H)),older(1008)),pk(C))",
	"multi(2,A,B,C)",
	"thresh()",
	"tr(K,{pk(A),{pk(B),pk(C)}})",
	"or(99@pk(A),thresh(2,pk(B),pk(C),pk(D)))",
	"a,b",
	"pk(A",
	"pk(A))",
}

func TestFormatRoundTrip(t *testing.T) {
	for _, g := range []Grammar{Miniscript, Policy} {
		for _, e := range formatInputs {
			require.Equal(t, e, Compact(g.Format(e)), "%s: round trip", g.Name)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	for _, g := range []Grammar{Miniscript, Policy} {
		for _, e := range formatInputs {
			once := g.Format(e)
			require.Equal(t, once, g.Format(once), "%s: Format(%q)", g.Name, e)
			c := Compact(once)
			require.Equal(t, c, Compact(c))
		}
	}
}

func TestFormatNested(t *testing.T) {
	got := Miniscript.Format("and_v(v:pk(A),or_d(pk(B),pk(C)))")
	want := "and_v(\n" +
		"  v:pk(A),\n" +
		"  or_d(\n" +
		"    pk(B),\n" +
		"    pk(C)\n" +
		"  )\n" +
		")"
	require.Equal(t, want, got)
}

func TestFormatWrappedOperator(t *testing.T) {
	got := Miniscript.Format("v:or_d(pk(A),pk(B))")
	want := "v:or_d(\n  pk(A),\n  pk(B)\n)"
	require.Equal(t, want, got)
}

func TestFormatEmptyArgumentsInline(t *testing.T) {
	require.Equal(t, "thresh()", Miniscript.Format("thresh()"))
}

func TestFormatIgnoresInputWhitespace(t *testing.T) {
	got := Miniscript.Format("and_v( v:pk(A) ,\n\tpk(B) )")
	want := "and_v(\n  v:pk(A),\n  pk(B)\n)"
	require.Equal(t, want, got)
}

func TestFormatPolicyGrammar(t *testing.T) {
	got := Policy.Format("or(99@pk(A),pk(B))")
	want := "or(\n  99@pk(A),\n  pk(B)\n)"
	require.Equal(t, want, got)
	// "or" is not a miniscript operator: the call stays on the first line.
	got = Miniscript.Format("or(pk(A),pk(B))")
	want = "or(pk(A),\n  pk(B)\n)"
	require.Equal(t, want, got)
}

func TestFormatNames(t *testing.T) {
	names := mapNames{"A": "alice", "B": "bob"}
	got := Miniscript.FormatNames("or_d(pk(A),pk(B))", names)
	want := "or_d(\n  pk(alice),\n  pk(bob)\n)"
	require.Equal(t, want, got)
}

func TestSubstitute(t *testing.T) {
	names := mapNames{"A": "02aa", "pk": "nope"}
	require.Equal(t, "and_v(v:pk(02aa),nope(AB))", Substitute("and_v(v:pk(A),pk(AB))", names))
	require.Equal(t, "pk(A)", Substitute("pk(A)", nil), "nil names are the identity")
}

func TestCompact(t *testing.T) {
	require.Equal(t, "and_v(v:pk(A),pk(B))", Compact(" and_v(\n  v:pk(A),\u00a0pk(B)\t)\r\n"))
}
