// Package state provides lookup and snapshot helpers over GameState.
// Snapshots are never mutated in place: every helper that "changes"
// something returns a new GameState sharing untouched data with the
// old one (copy-on-write of the single touched room).
package state

import (
	"strings"
	"time"

	"github.com/mwhitby/advent/types"
)

// CurrentRoom returns the room the player is standing in. The second
// return is false when the state's room ID does not resolve, which
// means the content violated referential integrity.
func CurrentRoom(s *types.GameState) (*types.Room, bool) {
	return RoomByID(s.Adventure, s.CurrentRoomID)
}

// RoomByID finds a room in an adventure by ID.
func RoomByID(adv *types.Adventure, id string) (*types.Room, bool) {
	for _, r := range adv.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// HasItem reports whether the inventory holds an object with the given ID.
func HasItem(s *types.GameState, objectID string) bool {
	for _, obj := range s.Inventory {
		if obj.ID == objectID {
			return true
		}
	}
	return false
}

// FindExit locates an exit by direction, case-insensitively. Hidden
// exits are returned too; traversal visibility is the engine's call.
func FindExit(room *types.Room, direction string) (int, bool) {
	for i, e := range room.Exits {
		if strings.EqualFold(e.Direction, direction) {
			return i, true
		}
	}
	return -1, false
}

// FindObject locates an object in a list by its canonical name,
// case-insensitively. Aliases are deliberately not consulted.
func FindObject(objects []types.GameObject, name string) (int, bool) {
	for i, obj := range objects {
		if strings.EqualFold(obj.Name, name) {
			return i, true
		}
	}
	return -1, false
}

// Clone returns a shallow copy of the snapshot. Slices and maps are
// still shared with the original; callers must go through WithMessage,
// WithRoom, etc. before appending or writing.
func Clone(s *types.GameState) *types.GameState {
	c := *s
	return &c
}

// WithMessage returns a new snapshot with one message appended. The
// history backing array is copied so the prior snapshot's log can never
// be disturbed by a later append.
func WithMessage(s *types.GameState, kind types.MessageKind, text string) *types.GameState {
	c := Clone(s)
	c.History = appendMessage(s.History, types.GameMessage{
		Kind:      kind,
		Text:      text,
		Timestamp: time.Now(),
	})
	return c
}

// WithRoom returns a new snapshot whose adventure has the given room
// replacing the one with the same ID. All other rooms are shared by
// pointer with the old adventure.
func WithRoom(s *types.GameState, room *types.Room) *types.GameState {
	adv := *s.Adventure
	adv.Rooms = make([]*types.Room, len(s.Adventure.Rooms))
	copy(adv.Rooms, s.Adventure.Rooms)
	for i, r := range adv.Rooms {
		if r.ID == room.ID {
			adv.Rooms[i] = room
			break
		}
	}
	c := Clone(s)
	c.Adventure = &adv
	return c
}

// WithVisited returns a snapshot with the room ID added to the visited
// set. Idempotent; the map is copied only when the ID is new.
func WithVisited(s *types.GameState, roomID string) *types.GameState {
	if s.Visited[roomID] {
		return s
	}
	visited := make(map[string]bool, len(s.Visited)+1)
	for id := range s.Visited {
		visited[id] = true
	}
	visited[roomID] = true
	c := Clone(s)
	c.Visited = visited
	return c
}

// WithInventory returns a snapshot with the given inventory list.
func WithInventory(s *types.GameState, inv []types.GameObject) *types.GameState {
	c := Clone(s)
	c.Inventory = inv
	return c
}

// AppendObject copies a list and appends one object to the end.
func AppendObject(objects []types.GameObject, obj types.GameObject) []types.GameObject {
	out := make([]types.GameObject, len(objects), len(objects)+1)
	copy(out, objects)
	return append(out, obj)
}

// RemoveObject copies a list with the object at index i removed.
func RemoveObject(objects []types.GameObject, i int) []types.GameObject {
	out := make([]types.GameObject, 0, len(objects)-1)
	out = append(out, objects[:i]...)
	return append(out, objects[i+1:]...)
}

func appendMessage(history []types.GameMessage, msg types.GameMessage) []types.GameMessage {
	out := make([]types.GameMessage, len(history), len(history)+1)
	copy(out, history)
	return append(out, msg)
}
