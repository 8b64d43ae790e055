package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"msview/internal/layout"
	"msview/internal/parse"
	"msview/internal/subst"
)

// viewer turns one expression into the configured output. It holds no
// state derived from earlier inputs. names is a session table layered over
// the names file, so editor assignments shadow file entries without
// changing them.
type viewer struct {
	cfg   *config
	mode  string
	names *subst.Table
}

func newViewer(cfg *config, names *subst.Table) *viewer {
	return &viewer{cfg: cfg, mode: cfg.Mode, names: subst.NewTable(names)}
}

func (v *viewer) grammar() parse.Grammar {
	if v.cfg.Policy {
		return parse.Policy
	}
	return parse.Miniscript
}

// displayNames returns the table applied to output, or nil when there is
// nothing to substitute.
func (v *viewer) displayNames() parse.Names {
	if v.names.Len() == 0 {
		return nil
	}
	if v.cfg.Reverse {
		return v.names.Reverse()
	}
	return v.names
}

func (v *viewer) parse(expr string) (*parse.Node, error) {
	if v.cfg.Taproot || strings.HasPrefix(expr, "tr(") {
		return parse.ParseTaproot(expr)
	}
	return parse.Parse(expr)
}

// render produces the output for expr. Empty input renders as "".
func (v *viewer) render(expr string) (string, error) {
	expr = parse.Compact(expr)
	node, err := v.parse(expr)
	if err != nil {
		return "", err
	}
	if node.IsEmpty() {
		return "", nil
	}
	names := v.displayNames()

	switch v.mode {
	case modeFormat:
		return v.grammar().FormatNames(expr, names), nil
	case modeCompact:
		return parse.Substitute(expr, names), nil
	case modeDump:
		return strings.TrimSuffix(parse.Dump(node)+summary(node), "\n"), nil
	case modeSpew:
		return strings.TrimSuffix(spew.Sdump(node), "\n"), nil
	default:
		return layout.Diagram(node, layout.Options{
			Names:        names,
			Annotate:     v.cfg.Annotate,
			ExpandLeaves: v.cfg.ExpandLeaves,
		})
	}
}

// summary lists the leaf count and terminal values under n, one line each
// and only when there are any.
func summary(n *parse.Node) string {
	var lines []string
	if leaves := parse.Leaves(n); len(leaves) > 0 {
		lines = append(lines, fmt.Sprintf("leaves=%d", len(leaves)))
	}
	if terms := parse.Terminals(n); len(terms) > 0 {
		lines = append(lines, "terminals="+strings.Join(terms, ","))
	}
	return strings.Join(lines, "\n")
}
