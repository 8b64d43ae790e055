package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"msview/internal/subst"
)

const (
	modeTree    = "tree"
	modeFormat  = "format"
	modeCompact = "compact"
	modeDump    = "dump"
	modeSpew    = "spew"
)

// modes lists every output mode; the first is the default.
var modes = []string{modeTree, modeFormat, modeCompact, modeDump, modeSpew}

// validMode reports whether mode names an output mode.
func validMode(mode string) bool {
	return slices.Contains(modes, mode)
}

// config defines the configuration options for msview.
type config struct {
	Mode         string `short:"m" long:"mode" description:"Output mode (see Modes above)"`
	Policy       bool   `short:"p" long:"policy" description:"Format using the policy grammar"`
	Taproot      bool   `short:"t" long:"taproot" description:"Parse input as a taproot descriptor (implied by a tr( prefix)"`
	Annotate     bool   `short:"a" long:"annotate" description:"Append fragment hints to diagram labels"`
	ExpandLeaves bool   `short:"e" long:"expand-leaves" description:"Draw taproot leaf scripts as subtrees"`
	NamesFile    string `short:"n" long:"names" description:"File of NAME=VALUE substitutions applied to the output"`
	Reverse      bool   `short:"r" long:"reverse" description:"Replace literal values with their names instead"`
	DebugLevel   string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}" default:"info"`
}

// loadConfig parses the command line and returns the configuration, the
// remaining arguments and the substitution table.
func loadConfig() (*config, []string, *subst.Table, error) {
	cfg := config{
		Mode:       modes[0],
		DebugLevel: "info",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [EXPRESSION...]\n\nModes: " + strings.Join(modes, ", ")
	args, err := parser.Parse()
	if err != nil {
		return nil, nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return nil, nil, nil, err
	}
	if !validMode(cfg.Mode) {
		return nil, nil, nil, fmt.Errorf("invalid mode %q, must be one of %s",
			cfg.Mode, strings.Join(modes, ", "))
	}

	names := subst.NewTable(nil)
	if cfg.NamesFile != "" {
		f, err := os.Open(cfg.NamesFile)
		if err != nil {
			return nil, nil, nil, err
		}
		defer f.Close()
		if err := subst.Load(names, f); err != nil {
			return nil, nil, nil, fmt.Errorf("%s: %w", cfg.NamesFile, err)
		}
		log.Debugf("Loaded %d names from %s", names.Len(), cfg.NamesFile)
	}
	return &cfg, args, names, nil
}
