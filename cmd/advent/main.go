// Advent is a deterministic engine for declarative text adventures.
// Usage: advent [--version] [--plain] [--script <file>] <adventure_directory>
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mwhitby/advent/cli"
	"github.com/mwhitby/advent/engine"
	"github.com/mwhitby/advent/loader"
	"github.com/mwhitby/advent/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var advDir string
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("advent %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			if advDir == "" {
				advDir = args[i]
			}
		}
	}

	if advDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: advent [--version] [--plain] [--script <file>] <adventure_directory>\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Load and compile the Lua adventure content.
	adv, err := loader.Load(advDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading adventure: %v\n", err)
		os.Exit(1)
	}

	// Advisory pre-flight: name/alias collisions make objects
	// unreachable by some words, but don't stop the game.
	for _, c := range loader.Conflicts(adv) {
		logger.Warn("object naming conflict", "conflict", c.String())
	}

	session := engine.NewSession(adv)

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(session)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use the plain CLI if --plain or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(session)
		c.Run()
		return
	}

	if err := tui.Run(session); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
