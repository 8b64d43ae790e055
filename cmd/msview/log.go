package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/btcsuite/btclog"

	"msview/internal/layout"
	"msview/internal/parse"
)

// Loggers per subsystem. A single backend logger is created and all
// subsystem loggers created from it will write to the backend.
var (
	backendLog = btclog.NewBackend(os.Stderr)

	log       = backendLog.Logger("MAIN")
	parseLog  = backendLog.Logger("PRSE")
	layoutLog = backendLog.Logger("LYOT")
)

// Initialize package-global logger variables.
func init() {
	parse.UseLogger(parseLog)
	layout.UseLogger(layoutLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"MAIN": log,
	"PRSE": parseLog,
	"LYOT": layoutLog,
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.
func setLogLevels(logLevel string) error {
	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		return fmt.Errorf("invalid debug level %q", logLevel)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}
