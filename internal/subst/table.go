// Package subst holds the name substitution table used when displaying
// expressions: symbolic key names on one side, literal values on the other.
package subst

import (
	"path"
	"sort"
)

// Table maps names to display values, optionally inheriting from a parent.
// A nil *Table is an empty table.
type Table struct {
	parent *Table
	vars   map[string]string
}

// NewTable constructs a table, optionally inheriting from parent.
func NewTable(parent *Table) *Table {
	return &Table{parent: parent, vars: make(map[string]string)}
}

// Lookup returns the value for name, searching parents if needed.
func (t *Table) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	if v, ok := t.vars[name]; ok {
		return v, true
	}
	return t.parent.Lookup(name)
}

// Get returns the value for name or "".
func (t *Table) Get(name string) string {
	v, _ := t.Lookup(name)
	return v
}

// Set assigns value to name in this table.
func (t *Table) Set(name, value string) {
	if t == nil {
		return
	}
	if t.vars == nil {
		t.vars = make(map[string]string)
	}
	t.vars[name] = value
}

// Unset removes name from this table. Parents are left alone.
func (t *Table) Unset(name string) {
	if t == nil || t.vars == nil {
		return
	}
	delete(t.vars, name)
}

// Names returns every visible name in sorted order.
func (t *Table) Names() []string {
	seen := make(map[string]bool)
	for cur := t; cur != nil; cur = cur.parent {
		for name := range cur.vars {
			seen[name] = true
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Reverse returns a flat table mapping every visible value back to its
// name, so literal keys can be shown by name. When two names share a
// value the alphabetically first one wins.
func (t *Table) Reverse() *Table {
	out := NewTable(nil)
	names := t.Names()
	for i := len(names) - 1; i >= 0; i-- {
		out.Set(t.Get(names[i]), names[i])
	}
	return out
}

// Len returns the number of visible names.
func (t *Table) Len() int {
	return len(t.Names())
}

// Match returns the visible names matching any of the glob patterns, in
// sorted order. No patterns matches every name.
func (t *Table) Match(patterns ...string) []string {
	names := t.Names()
	if len(patterns) == 0 {
		return names
	}
	var out []string
	for _, name := range names {
		if matchAnyPattern(name, patterns) {
			out = append(out, name)
		}
	}
	return out
}

func matchAnyPattern(name string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, err := path.Match(pat, name); err == nil && ok {
			return true
		}
	}
	return false
}
