package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	cfg, args, names, err := loadConfig()
	if err != nil {
		var ferr *flags.Error
		if !errors.As(err, &ferr) {
			log.Error(err)
		} else if ferr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	v := newViewer(cfg, names)

	if len(args) > 0 {
		return runArgs(v, args, os.Stdout)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return runInteractive(v)
	}
	return runScript(v, os.Stdin, os.Stdout)
}

// runArgs renders every argument as its own expression.
func runArgs(v *viewer, args []string, w io.Writer) error {
	var failed error
	printed := 0
	for _, expr := range args {
		out, err := v.render(expr)
		if err != nil {
			log.Errorf("%q: %v", expr, err)
			failed = err
			continue
		}
		if out == "" {
			continue
		}
		if printed > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, out)
		printed++
		warnIfWide(out)
	}
	return failed
}

// runScript renders each non-blank line of rd.
func runScript(v *viewer, rd io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(rd)
	var failed error
	line, printed := 0, 0
	for sc.Scan() {
		line++
		out, err := v.render(sc.Text())
		if err != nil {
			log.Errorf("line %d: %v", line, err)
			failed = err
			continue
		}
		if out == "" {
			continue
		}
		if printed > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, out)
		printed++
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return failed
}

// warnIfWide logs when a rendering will not fit the terminal on stdout.
func warnIfWide(out string) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return
	}
	if w := widestLine(out); w > width {
		log.Warnf("Output is %d columns wide, terminal has %d", w, width)
	}
}

func widestLine(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return widest
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
