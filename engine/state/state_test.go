package state

import (
	"testing"

	"github.com/mwhitby/advent/types"
)

func testState() *types.GameState {
	return &types.GameState{
		Adventure: &types.Adventure{
			ID:             "test",
			Title:          "Test",
			StartingRoomID: "hall",
			Rooms: []*types.Room{
				{
					ID:          "hall",
					Title:       "Hall",
					Description: "A hall.",
					Exits: []types.Exit{
						{Direction: "north", TargetRoomID: "garden"},
						{Direction: "east", TargetRoomID: "vault", IsHidden: true},
					},
					Objects: []types.GameObject{
						{ID: "key", Name: "silver key"},
						{ID: "book", Name: "book"},
					},
				},
				{ID: "garden", Title: "Garden", Description: "A garden."},
				{ID: "vault", Title: "Vault", Description: "A vault."},
			},
		},
		CurrentRoomID: "hall",
		Inventory:     []types.GameObject{{ID: "coin", Name: "gold coin"}},
		Visited:       map[string]bool{"hall": true},
	}
}

func TestCurrentRoom(t *testing.T) {
	s := testState()
	room, ok := CurrentRoom(s)
	if !ok {
		t.Fatal("CurrentRoom not found")
	}
	if room.ID != "hall" {
		t.Errorf("room ID = %q, want hall", room.ID)
	}

	s.CurrentRoomID = "nowhere"
	if _, ok := CurrentRoom(s); ok {
		t.Error("expected lookup failure for unknown room ID")
	}
}

func TestHasItem(t *testing.T) {
	s := testState()
	if !HasItem(s, "coin") {
		t.Error("expected coin in inventory")
	}
	if HasItem(s, "key") {
		t.Error("key should not be in inventory")
	}
}

func TestFindExit(t *testing.T) {
	s := testState()
	room, _ := CurrentRoom(s)

	i, ok := FindExit(room, "NORTH")
	if !ok {
		t.Fatal("expected to find north exit case-insensitively")
	}
	if room.Exits[i].TargetRoomID != "garden" {
		t.Errorf("target = %q, want garden", room.Exits[i].TargetRoomID)
	}

	// Hidden exits are still found; visibility is the caller's concern.
	if _, ok := FindExit(room, "east"); !ok {
		t.Error("expected to find hidden east exit")
	}

	if _, ok := FindExit(room, "west"); ok {
		t.Error("found nonexistent west exit")
	}
}

func TestFindObjectMatchesNameOnly(t *testing.T) {
	objects := []types.GameObject{
		{ID: "key", Name: "silver key", Aliases: []string{"key"}},
	}

	if _, ok := FindObject(objects, "Silver Key"); !ok {
		t.Error("expected case-insensitive name match")
	}
	// Aliases are not consulted.
	if _, ok := FindObject(objects, "key"); ok {
		t.Error("alias matched; resolution should use canonical name only")
	}
}

func TestWithMessageLeavesOldSnapshotIntact(t *testing.T) {
	s := testState()
	s2 := WithMessage(s, types.MessageNarration, "first")
	s3 := WithMessage(s2, types.MessageNarration, "second")

	// Appending to a later snapshot must never disturb an earlier one.
	_ = WithMessage(s2, types.MessageError, "fork")

	if len(s.History) != 0 {
		t.Errorf("original history length = %d, want 0", len(s.History))
	}
	if len(s2.History) != 1 || s2.History[0].Text != "first" {
		t.Errorf("s2 history corrupted: %+v", s2.History)
	}
	if len(s3.History) != 2 || s3.History[1].Text != "second" {
		t.Errorf("s3 history corrupted: %+v", s3.History)
	}
}

func TestWithRoomSharesUntouchedRooms(t *testing.T) {
	s := testState()
	room, _ := CurrentRoom(s)

	updated := *room
	updated.Objects = RemoveObject(room.Objects, 0)

	s2 := WithRoom(s, &updated)

	// Old snapshot still sees both objects.
	oldRoom, _ := CurrentRoom(s)
	if len(oldRoom.Objects) != 2 {
		t.Errorf("old room object count = %d, want 2", len(oldRoom.Objects))
	}
	newRoom, _ := CurrentRoom(s2)
	if len(newRoom.Objects) != 1 {
		t.Errorf("new room object count = %d, want 1", len(newRoom.Objects))
	}

	// Untouched rooms are shared by pointer.
	oldGarden, _ := RoomByID(s.Adventure, "garden")
	newGarden, _ := RoomByID(s2.Adventure, "garden")
	if oldGarden != newGarden {
		t.Error("untouched room was copied instead of shared")
	}
}

func TestWithVisited(t *testing.T) {
	s := testState()

	// Already-visited is a no-op returning the same snapshot.
	if s2 := WithVisited(s, "hall"); s2 != s {
		t.Error("expected identical snapshot for already-visited room")
	}

	s3 := WithVisited(s, "garden")
	if !s3.Visited["garden"] {
		t.Error("garden not marked visited")
	}
	if s.Visited["garden"] {
		t.Error("original visited map was mutated")
	}
}

func TestRemoveObject(t *testing.T) {
	objects := []types.GameObject{
		{ID: "a", Name: "a"},
		{ID: "b", Name: "b"},
		{ID: "c", Name: "c"},
	}
	out := RemoveObject(objects, 1)
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "c" {
		t.Errorf("RemoveObject = %+v", out)
	}
	if len(objects) != 3 {
		t.Error("input slice was mutated")
	}
}
