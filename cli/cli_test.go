package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mwhitby/advent/engine"
	"github.com/mwhitby/advent/types"
)

func testAdventure() *types.Adventure {
	return &types.Adventure{
		ID:             "cli-test",
		Title:          "CLI Test",
		StartingRoomID: "hall",
		Rooms: []*types.Room{
			{
				ID:          "hall",
				Title:       "Hall",
				Description: "A stone hall.",
				Exits: []types.Exit{
					{Direction: "north", TargetRoomID: "garden", Description: "to the garden"},
				},
				Objects: []types.GameObject{
					{ID: "key", Name: "key", Description: "A key.", IsPickupable: true},
				},
			},
			{
				ID:          "garden",
				Title:       "Garden",
				Description: "A garden.",
				Exits: []types.Exit{
					{Direction: "south", TargetRoomID: "hall"},
				},
			},
		},
	}
}

// runScript drives a CLI session with scripted input and returns the
// full output.
func runScript(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	c := New(engine.NewSession(testAdventure()))
	c.In = strings.NewReader(script)
	c.Out = &out
	c.Run()
	return out.String()
}

func TestRunPrintsOpeningAndRoom(t *testing.T) {
	out := runScript(t, "")

	for _, want := range []string{
		"Welcome to CLI Test!",
		"Available Commands",
		"=== Hall ===",
		"A stone hall.",
		"> ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunExecutesCommands(t *testing.T) {
	out := runScript(t, "take key\ngo north\n")

	if !strings.Contains(out, "You take the key.") {
		t.Errorf("take output missing:\n%s", out)
	}
	if !strings.Contains(out, "=== Garden ===") {
		t.Errorf("move output missing:\n%s", out)
	}
}

func TestRunSkipsBlanksAndComments(t *testing.T) {
	out := runScript(t, "\n   \n# a comment\ntake key\n")

	if strings.Contains(out, "I don't understand") {
		t.Errorf("blank/comment lines reached the engine:\n%s", out)
	}
	if !strings.Contains(out, "You take the key.") {
		t.Errorf("command after comment not executed:\n%s", out)
	}
}

func TestRunAgainRepeatsLastCommand(t *testing.T) {
	out := runScript(t, "look\nagain\n")

	if got := strings.Count(out, "=== Hall ==="); got != 3 {
		// Initial look, explicit look, repeated look.
		t.Errorf("hall described %d times, want 3:\n%s", got, out)
	}

	out = runScript(t, "again\n")
	if !strings.Contains(out, "Nothing to repeat.") {
		t.Errorf("expected repeat failure message:\n%s", out)
	}
}

func TestRunExitSaysGoodbye(t *testing.T) {
	out := runScript(t, "quit\nlook\n")

	if !strings.Contains(out, "Goodbye.") {
		t.Errorf("missing goodbye:\n%s", out)
	}
	// Nothing after quit is processed.
	if got := strings.Count(out, "=== Hall ==="); got != 1 {
		t.Errorf("hall described %d times, want 1:\n%s", got, out)
	}
}

func TestRunEchoInput(t *testing.T) {
	var out bytes.Buffer
	c := New(engine.NewSession(testAdventure()))
	c.In = strings.NewReader("take key\n")
	c.Out = &out
	c.EchoInput = true
	c.Run()

	if !strings.Contains(out.String(), "> take key") {
		t.Errorf("input not echoed after prompt:\n%s", out.String())
	}
}
