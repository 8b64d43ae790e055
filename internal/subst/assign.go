package subst

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseAssignment splits "NAME=VALUE". Surrounding blanks are ignored and
// the value may itself contain '='.
func ParseAssignment(s string) (name, value string, err error) {
	name, value, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok {
		return "", "", fmt.Errorf("expected NAME=VALUE, got %q", s)
	}
	name, value = strings.TrimSpace(name), strings.TrimSpace(value)
	if !isName(name) {
		return "", "", fmt.Errorf("invalid name %q", name)
	}
	if value == "" {
		return "", "", fmt.Errorf("empty value for %s", name)
	}
	return name, value, nil
}

// Load reads NAME=VALUE lines into t. Blank lines and lines starting with
// '#' are skipped. Errors carry the line number.
func Load(t *Table, rd io.Reader) error {
	sc := bufio.NewScanner(rd)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		name, value, err := ParseAssignment(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		t.Set(name, value)
	}
	return sc.Err()
}

func isName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
