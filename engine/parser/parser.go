// Package parser converts command strings into ParsedCommand structs.
// Intentionally dumb: no NLP, just pattern matching on a fixed verb set.
package parser

import (
	"strings"

	"github.com/mwhitby/advent/types"
)

// Single-letter shortcuts expand to full direction words. Any other
// token after "go" passes through unexpanded, so adventures can define
// custom directions ("out", "in", "through").
var directionExpansions = map[string]string{
	"n": "north",
	"s": "south",
	"e": "east",
	"w": "west",
	"u": "up",
	"d": "down",
}

// Directions recognized as standalone shortcuts for "go <dir>".
var directionNames = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"up": true, "down": true,
}

// Parse converts a raw command string into a ParsedCommand. It is pure
// and total: unmatched input maps to CommandUnknown, never an error.
//
// Check order matters. The "go" prefix is checked first, then bare
// directions, then the remaining verbs — so a custom direction that
// collides with a verb word is still reachable via "go <word>".
func Parse(input string) types.ParsedCommand {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(words) == 0 {
		return types.ParsedCommand{Kind: types.CommandUnknown, RawInput: input}
	}

	first := words[0]
	rest := words[1:]

	// Explicit "go <direction>".
	if first == "go" && len(rest) > 0 {
		return types.ParsedCommand{
			Kind:      types.CommandGo,
			Direction: expandDirection(rest[0]),
			RawInput:  input,
		}
	}

	// Bare direction shortcut: "north", "n", "u".
	if dir := expandDirection(first); directionNames[dir] {
		return types.ParsedCommand{
			Kind:      types.CommandGo,
			Direction: dir,
			RawInput:  input,
		}
	}

	switch first {
	case "look", "l":
		arg := strings.Join(rest, " ")
		// "look at X" and "look X" both examine; bare "look" describes
		// the room.
		if strings.HasPrefix(arg, "at ") {
			return examineCommand(strings.TrimSpace(arg[3:]), input)
		}
		if arg != "" {
			return examineCommand(arg, input)
		}
		return types.ParsedCommand{Kind: types.CommandLook, RawInput: input}

	case "examine", "x":
		return examineCommand(strings.Join(rest, " "), input)

	case "take", "get":
		return objectCommand(types.CommandTake, rest, input)

	case "drop":
		return objectCommand(types.CommandDrop, rest, input)

	case "inventory", "inv", "i":
		return types.ParsedCommand{Kind: types.CommandInventory, RawInput: input}

	case "read":
		return objectCommand(types.CommandRead, rest, input)

	case "help", "?":
		return types.ParsedCommand{Kind: types.CommandHelp, RawInput: input}

	case "exit", "quit":
		return types.ParsedCommand{Kind: types.CommandExit, RawInput: input}
	}

	return types.ParsedCommand{Kind: types.CommandUnknown, RawInput: input}
}

// expandDirection maps single-letter shortcuts to full direction words.
// Unrecognized tokens pass through unchanged.
func expandDirection(token string) string {
	if full, ok := directionExpansions[token]; ok {
		return full
	}
	return token
}

func examineCommand(objectName, raw string) types.ParsedCommand {
	return types.ParsedCommand{
		Kind:       types.CommandExamine,
		ObjectName: objectName,
		RawInput:   raw,
	}
}

func objectCommand(kind types.CommandKind, rest []string, raw string) types.ParsedCommand {
	return types.ParsedCommand{
		Kind:       kind,
		ObjectName: strings.Join(rest, " "),
		RawInput:   raw,
	}
}
