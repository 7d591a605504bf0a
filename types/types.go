// Package types defines the shared data structures for the advent engine.
// This package contains only type definitions — no logic, no methods.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Adventure is an immutable world template. Sessions never edit it in
// place; a turn that changes the world produces a new Adventure value
// sharing every untouched room.
type Adventure struct {
	ID             string
	Title          string
	Description    string
	StartingRoomID string
	Rooms          []*Room
}

// Room is a navigable location. Rooms are referenced by ID and only
// exist inside an Adventure.
type Room struct {
	ID          string
	Title       string
	Description string
	Exits       []Exit
	Objects     []GameObject
	Features    []Feature
}

// Exit is a directed connection between two rooms. The direction token
// is an open string: adventures may define custom directions ("out",
// "in") beyond the compass set.
type Exit struct {
	Direction      string
	TargetRoomID   string
	Description    string
	IsHidden       bool
	RequiresItem   string // object ID gating traversal
	BlockedMessage string // shown when the gate is unmet
}

// GameObject is an interactive item, owned by exactly one container at
// a time: a room's object list or the player's inventory.
type GameObject struct {
	ID                string
	Name              string
	Aliases           []string
	Description       string
	IsPickupable      bool
	IsExaminable      bool
	IsReadable        bool
	IsWinTrigger      bool
	ExaminationText   string
	ReadableText      string
	RevealsHiddenExit *ExitReveal
}

// ExitReveal marks an object whose examination unhides an exit in the
// room the player is standing in.
type ExitReveal struct {
	Direction     string
	RevealMessage string
}

// Feature is non-interactive scenery: a label, optionally with aliases
// and examination text carried from the content format.
type Feature struct {
	Name            string
	Aliases         []string
	ExaminationText string
}

// MessageKind classifies an entry in the narration log.
type MessageKind string

const (
	MessageNarration MessageKind = "narration"
	MessageSystem    MessageKind = "system"
	MessageError     MessageKind = "error"
	MessageSuccess   MessageKind = "success"
)

// GameMessage is a single append-only entry in a session's history.
type GameMessage struct {
	Kind      MessageKind
	Text      string
	Timestamp time.Time
}

// GameState is one immutable snapshot of a session. Every executed
// command produces a new snapshot; prior snapshots stay valid.
type GameState struct {
	SessionID     uuid.UUID
	Adventure     *Adventure
	CurrentRoomID string
	Inventory     []GameObject // insertion order = pickup order
	Visited       map[string]bool
	History       []GameMessage
	GameOver      bool
	GameWon       bool
	Exited        bool
}

// CommandKind identifies the verb of a parsed command.
type CommandKind string

const (
	CommandGo        CommandKind = "go"
	CommandLook      CommandKind = "look"
	CommandExamine   CommandKind = "examine"
	CommandTake      CommandKind = "take"
	CommandDrop      CommandKind = "drop"
	CommandInventory CommandKind = "inventory"
	CommandRead      CommandKind = "read"
	CommandHelp      CommandKind = "help"
	CommandExit      CommandKind = "exit"
	CommandUnknown   CommandKind = "unknown"
)

// ParsedCommand is the structured form of one line of player input.
// Direction is set for go; ObjectName for examine/take/drop/read.
// RawInput preserves the original text for diagnostics.
type ParsedCommand struct {
	Kind       CommandKind
	Direction  string
	ObjectName string
	RawInput   string
}
