package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"msview/internal/parse"
	"msview/internal/subst"
)

const (
	promptMain = "> "
	promptCont = "... "
)

var errText = color.New(color.FgRed).SprintFunc()

func runInteractive(v *viewer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := historyFile()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	for {
		input, ok := readExpression(line, v)
		if !ok {
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(strings.ReplaceAll(input, "\n", " "))

		if strings.HasPrefix(strings.TrimSpace(input), ":") {
			if quit := runCommand(v, strings.TrimSpace(input), os.Stdout); quit {
				break
			}
			continue
		}

		out, err := v.render(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, errText(err.Error()))
			continue
		}
		if out != "" {
			fmt.Println(out)
			warnIfWide(out)
		}
	}

	if historyPath != "" {
		if f, err := os.Create(historyPath); err == nil {
			defer f.Close()
			_, _ = line.WriteHistory(f)
		}
	}
	return nil
}

// readExpression reads lines until the brackets typed so far balance, so
// a long expression can be entered over several lines. ok is false at EOF.
func readExpression(line *liner.State, v *viewer) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(os.Stderr)
			return "", true
		}
		if errors.Is(err, io.EOF) {
			return b.String(), b.Len() > 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(input)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := v.parse(parse.Compact(src)); parse.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// runCommand executes an editor command and reports whether to quit.
func runCommand(v *viewer, cmd string, w io.Writer) bool {
	name, arg, _ := strings.Cut(cmd, " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case ":quit", ":q":
		return true
	case ":let":
		key, value, err := subst.ParseAssignment(arg)
		if err != nil {
			fmt.Fprintln(w, errText(err.Error()))
			return false
		}
		v.names.Set(key, value)
	case ":unset":
		v.names.Unset(arg)
	case ":names":
		for _, n := range v.names.Match(strings.Fields(arg)...) {
			fmt.Fprintf(w, "%s=%s\n", n, v.names.Get(n))
		}
	case ":mode":
		if !validMode(arg) {
			fmt.Fprintln(w, errText(fmt.Sprintf("unknown mode %q", arg)))
			return false
		}
		v.mode = arg
	default:
		fmt.Fprintln(w, "commands: :let NAME=VALUE, :unset NAME, :names [PATTERN...], :mode MODE, :quit")
	}
	return false
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".msview_history")
}
