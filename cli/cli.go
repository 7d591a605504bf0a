// Package cli provides a plain line-oriented terminal shell for the
// advent engine: prompt, input, and message printing with no styling.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mwhitby/advent/engine"
	"github.com/mwhitby/advent/types"
)

// CLI handles terminal interaction with the player. It owns the
// current snapshot; the engine never retains a reference between turns.
type CLI struct {
	State     *types.GameState
	In        io.Reader
	Out       io.Writer
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI around an existing session.
func New(s *types.GameState) *CLI {
	return &CLI{
		State: s,
		In:    os.Stdin,
		Out:   os.Stdout,
	}
}

// Run starts the game loop: print the opening messages and the starting
// room, then loop prompt → input → execute → print new messages. It
// returns when input runs out or the session's exited flag is raised.
func (c *CLI) Run() {
	printed := 0
	printed = c.printNew(printed)

	// Describe the starting room before the first prompt.
	c.State = engine.Execute(c.State, "look")
	printed = c.printNew(printed)

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// "again" / "g" repeats the last command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		c.State = engine.Execute(c.State, input)
		printed = c.printNew(printed)

		if c.State.Exited {
			c.printLine("Goodbye.")
			return
		}
	}
}

// printNew prints history entries appended since the last call and
// returns the new high-water mark.
func (c *CLI) printNew(printed int) int {
	for _, msg := range c.State.History[printed:] {
		c.printLine(msg.Text)
		c.printLine("")
	}
	return len(c.State.History)
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}
