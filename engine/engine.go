// Package engine owns session state transitions: it maps parsed
// commands to new GameState snapshots, enforcing traversal and
// possession rules and appending narration to the history log.
//
// Execute never mutates its input. The returned snapshot shares every
// untouched room, so callers can keep old snapshots around for undo or
// replay at no cost.
package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mwhitby/advent/engine/parser"
	"github.com/mwhitby/advent/engine/state"
	"github.com/mwhitby/advent/types"
)

const helpText = `
Available Commands:
  go [direction]           - Move in a direction (or just type the direction)
                            Directions: north/n, south/s, east/e, west/w, up/u, down/d
  look (l)                - Examine the current room
  examine [object] (x)    - Examine an object in detail
  take [object] (get)     - Pick up an item
  drop [object]           - Drop an item from inventory
  inventory (i, inv)      - Check what you're carrying
  read [object]           - Read a readable object
  help (?)                - Show this help message
  exit (quit)             - Leave the game
`

const endedMessage = "The game has ended."

// NewSession seeds a fresh session from an adventure template. The
// starting room is marked visited and the history opens with a welcome
// message and the help text.
func NewSession(adv *types.Adventure) *types.GameState {
	s := &types.GameState{
		SessionID:     uuid.New(),
		Adventure:     adv,
		CurrentRoomID: adv.StartingRoomID,
		Inventory:     []types.GameObject{},
		Visited:       map[string]bool{adv.StartingRoomID: true},
	}
	s = state.WithMessage(s, types.MessageSystem,
		fmt.Sprintf("Welcome to %s!\n\nType \"help\" at any time for a list of commands.", adv.Title))
	return state.WithMessage(s, types.MessageSystem, helpText)
}

// Execute processes one line of player input and returns the next
// snapshot. Deterministic and total: every failure mode becomes an
// error-kind message on the history, never a panic or error return.
func Execute(s *types.GameState, input string) *types.GameState {
	// Once the session has ended, every input gets the same answer.
	if s.GameOver || s.GameWon {
		return state.WithMessage(s, types.MessageSystem, endedMessage)
	}

	cmd := parser.Parse(input)

	switch cmd.Kind {
	case types.CommandGo:
		return handleGo(s, cmd)
	case types.CommandLook:
		return handleLook(s)
	case types.CommandExamine:
		return handleExamine(s, cmd)
	case types.CommandTake:
		return handleTake(s, cmd)
	case types.CommandDrop:
		return handleDrop(s, cmd)
	case types.CommandInventory:
		return handleInventory(s)
	case types.CommandRead:
		return handleRead(s, cmd)
	case types.CommandHelp:
		return state.WithMessage(s, types.MessageSystem, helpText)
	case types.CommandExit:
		c := state.Clone(s)
		c.Exited = true
		return c
	default:
		return state.WithMessage(s, types.MessageError,
			fmt.Sprintf("I don't understand %q. Type \"help\" for commands.", cmd.RawInput))
	}
}

func handleGo(s *types.GameState, cmd types.ParsedCommand) *types.GameState {
	room, ok := state.CurrentRoom(s)
	if !ok {
		return state.WithMessage(s, types.MessageError, "Error: Current room not found.")
	}

	i, ok := state.FindExit(room, cmd.Direction)
	// Hidden exits are invisible to traversal, not just to listing:
	// same error as no exit at all.
	if !ok || room.Exits[i].IsHidden {
		return state.WithMessage(s, types.MessageError,
			fmt.Sprintf("You can't go %s from here.", cmd.Direction))
	}
	exit := room.Exits[i]

	if exit.RequiresItem != "" && !state.HasItem(s, exit.RequiresItem) {
		msg := exit.BlockedMessage
		if msg == "" {
			msg = fmt.Sprintf("You need something to go %s.", cmd.Direction)
		}
		return state.WithMessage(s, types.MessageError, msg)
	}

	next := state.Clone(s)
	next.CurrentRoomID = exit.TargetRoomID
	next = state.WithVisited(next, exit.TargetRoomID)

	if target, ok := state.CurrentRoom(next); ok {
		next = state.WithMessage(next, types.MessageNarration, describeRoom(target))
	}
	return next
}

func handleLook(s *types.GameState) *types.GameState {
	room, ok := state.CurrentRoom(s)
	if !ok {
		return state.WithMessage(s, types.MessageError, "Error: Current room not found.")
	}
	return state.WithMessage(s, types.MessageNarration, describeRoom(room))
}

func handleExamine(s *types.GameState, cmd types.ParsedCommand) *types.GameState {
	if cmd.ObjectName == "" {
		return state.WithMessage(s, types.MessageError, "Examine what?")
	}

	room, ok := state.CurrentRoom(s)
	if !ok {
		return state.WithMessage(s, types.MessageError, "Error: Current room not found.")
	}

	// Room objects first, then inventory. Matching is on the canonical
	// name only; aliases are not consulted.
	obj, found := findInScope(room, s, cmd.ObjectName)
	if !found {
		return state.WithMessage(s, types.MessageError,
			fmt.Sprintf("You don't see the %s here.", cmd.ObjectName))
	}
	if !obj.IsExaminable {
		return state.WithMessage(s, types.MessageError,
			fmt.Sprintf("You can't examine the %s.", obj.Name))
	}

	text := obj.ExaminationText
	if text == "" {
		text = obj.Description
	}
	next := state.WithMessage(s, types.MessageNarration, text)

	if obj.RevealsHiddenExit != nil {
		next = revealHiddenExit(next, obj.RevealsHiddenExit)
	}

	if obj.IsWinTrigger {
		next = state.Clone(next)
		next.GameWon = true
	}
	return next
}

func handleTake(s *types.GameState, cmd types.ParsedCommand) *types.GameState {
	if cmd.ObjectName == "" {
		return state.WithMessage(s, types.MessageError, "Take what?")
	}

	room, ok := state.CurrentRoom(s)
	if !ok {
		return state.WithMessage(s, types.MessageError, "Error: Current room not found.")
	}

	i, ok := state.FindObject(room.Objects, cmd.ObjectName)
	if !ok {
		return state.WithMessage(s, types.MessageError,
			fmt.Sprintf("You don't see the %s here.", cmd.ObjectName))
	}
	obj := room.Objects[i]
	if !obj.IsPickupable {
		return state.WithMessage(s, types.MessageError,
			fmt.Sprintf("You can't take the %s.", obj.Name))
	}

	updated := *room
	updated.Objects = state.RemoveObject(room.Objects, i)

	next := state.WithRoom(s, &updated)
	next = state.WithInventory(next, state.AppendObject(next.Inventory, obj))
	return state.WithMessage(next, types.MessageSuccess,
		fmt.Sprintf("You take the %s.", obj.Name))
}

func handleDrop(s *types.GameState, cmd types.ParsedCommand) *types.GameState {
	if cmd.ObjectName == "" {
		return state.WithMessage(s, types.MessageError, "Drop what?")
	}

	i, ok := state.FindObject(s.Inventory, cmd.ObjectName)
	if !ok {
		return state.WithMessage(s, types.MessageError,
			fmt.Sprintf("You don't have the %s.", cmd.ObjectName))
	}
	obj := s.Inventory[i]

	room, ok := state.CurrentRoom(s)
	if !ok {
		return state.WithMessage(s, types.MessageError, "Error: Current room not found.")
	}

	updated := *room
	updated.Objects = state.AppendObject(room.Objects, obj)

	next := state.WithInventory(s, state.RemoveObject(s.Inventory, i))
	next = state.WithRoom(next, &updated)
	return state.WithMessage(next, types.MessageSuccess,
		fmt.Sprintf("You drop the %s.", obj.Name))
}

func handleInventory(s *types.GameState) *types.GameState {
	if len(s.Inventory) == 0 {
		return state.WithMessage(s, types.MessageNarration, "You're not carrying anything.")
	}
	var b strings.Builder
	b.WriteString("You are carrying:\n")
	for _, obj := range s.Inventory {
		fmt.Fprintf(&b, "  - %s\n", obj.Name)
	}
	return state.WithMessage(s, types.MessageNarration, b.String())
}

func handleRead(s *types.GameState, cmd types.ParsedCommand) *types.GameState {
	if cmd.ObjectName == "" {
		return state.WithMessage(s, types.MessageError, "Read what?")
	}

	room, ok := state.CurrentRoom(s)
	if !ok {
		return state.WithMessage(s, types.MessageError, "Error: Current room not found.")
	}

	obj, found := findInScope(room, s, cmd.ObjectName)
	if !found {
		return state.WithMessage(s, types.MessageError,
			fmt.Sprintf("You don't see the %s here.", cmd.ObjectName))
	}
	if !obj.IsReadable {
		return state.WithMessage(s, types.MessageError,
			fmt.Sprintf("You can't read the %s.", obj.Name))
	}

	text := obj.ReadableText
	if text == "" {
		text = obj.Description
	}
	return state.WithMessage(s, types.MessageNarration, text)
}

// findInScope searches the current room's objects first, then the
// inventory, by canonical name.
func findInScope(room *types.Room, s *types.GameState, name string) (types.GameObject, bool) {
	if i, ok := state.FindObject(room.Objects, name); ok {
		return room.Objects[i], true
	}
	if i, ok := state.FindObject(s.Inventory, name); ok {
		return s.Inventory[i], true
	}
	return types.GameObject{}, false
}

// revealHiddenExit flips an exit's hidden flag in the current room and
// announces it. Revealing an exit that is absent or already visible is
// a silent no-op, so a second examine never duplicates the message.
// Exits stay revealed for the remainder of the session.
func revealHiddenExit(s *types.GameState, reveal *types.ExitReveal) *types.GameState {
	room, ok := state.CurrentRoom(s)
	if !ok {
		return s
	}

	i, ok := state.FindExit(room, reveal.Direction)
	if !ok || !room.Exits[i].IsHidden {
		return s
	}

	updated := *room
	updated.Exits = make([]types.Exit, len(room.Exits))
	copy(updated.Exits, room.Exits)
	updated.Exits[i].IsHidden = false

	next := state.WithRoom(s, &updated)

	msg := reveal.RevealMessage
	if msg == "" {
		msg = fmt.Sprintf("A previously hidden exit to the %s has been revealed!", reveal.Direction)
	}
	return state.WithMessage(next, types.MessageSystem, msg)
}

// describeRoom composes the arrival/look narration: title banner, room
// description, then bulleted objects, features, and visible exits.
func describeRoom(room *types.Room) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n=== %s ===\n%s", room.Title, room.Description)

	if len(room.Objects) > 0 {
		b.WriteString("\n\nYou can see:")
		for _, obj := range room.Objects {
			fmt.Fprintf(&b, "\n  - %s", obj.Name)
		}
	}

	if len(room.Features) > 0 {
		b.WriteString("\n\nYou notice:")
		for _, f := range room.Features {
			fmt.Fprintf(&b, "\n  - %s", f.Name)
		}
	}

	if len(room.Exits) > 0 {
		b.WriteString("\n\nExits:")
		for _, exit := range room.Exits {
			if exit.IsHidden {
				continue
			}
			desc := exit.Description
			if desc == "" {
				desc = "(" + exit.Direction + ")"
			}
			fmt.Fprintf(&b, "\n  - %s: %s", exit.Direction, desc)
		}
	}

	return b.String()
}
