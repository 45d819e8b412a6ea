// Package cmd implements the divsheet command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Configuration file. Defaults to divsheet.yaml in the current directory or in $HOME/.config/divsheet")

// Verbose switches logging to debug level.
var Verbose = flag.Bool("v", false, "Verbose logging")

// commands returns the subcommands by group.
func commands() map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"tracker":  {&refreshCmd{}, &initCmd{}, &columnsCmd{}},
		"market":   {&quoteCmd{}, &fxCmd{}},
		"settings": {&configCmd{}},
		"help":     {&topicCmd{}},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for group, cmds := range commands() {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

// Lookup reports whether c has a subcommand called name.
func Lookup(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// newLogger returns the logger of a run, every entry carries the run id.
func newLogger(id uuid.UUID) zerolog.Logger {
	level := zerolog.InfoLevel
	if *Verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(w).Level(level).With().Timestamp().Str("run", id.String()[:8]).Logger()
}

// printMarkdown renders markdown for the terminal, or prints it as is if it cannot.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
