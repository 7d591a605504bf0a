package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitby/advent/types"
)

func TestConflicts(t *testing.T) {
	adv := &types.Adventure{
		Rooms: []*types.Room{
			{
				ID: "armory",
				Objects: []types.GameObject{
					{ID: "iron-key", Name: "iron key", Aliases: []string{"key"}},
					{ID: "brass-key", Name: "brass key", Aliases: []string{"key"}},
				},
			},
			{
				ID: "library",
				Objects: []types.GameObject{
					// Name colliding with another object's name, case-insensitively.
					{ID: "scroll-a", Name: "Scroll"},
					{ID: "scroll-b", Name: "scroll"},
				},
			},
		},
	}

	conflicts := Conflicts(adv)
	require.Len(t, conflicts, 2)

	aliasClash := conflicts[0]
	assert.Equal(t, "armory", aliasClash.RoomID)
	assert.Equal(t, "key", aliasClash.Word)
	assert.Equal(t, "brass-key", aliasClash.ObjectID)
	assert.Equal(t, "iron-key", aliasClash.OtherID)
	assert.True(t, aliasClash.IsAlias)

	nameClash := conflicts[1]
	assert.Equal(t, "library", nameClash.RoomID)
	assert.Equal(t, "scroll", nameClash.Word)
	assert.False(t, nameClash.IsAlias)
	assert.Contains(t, nameClash.String(), `room "library"`)
}

func TestConflictsCrossRoomIsAllowed(t *testing.T) {
	// The same word in different rooms never conflicts: resolution is
	// always scoped to the player's current room and inventory.
	adv := &types.Adventure{
		Rooms: []*types.Room{
			{ID: "a", Objects: []types.GameObject{{ID: "key-a", Name: "key"}}},
			{ID: "b", Objects: []types.GameObject{{ID: "key-b", Name: "key"}}},
		},
	}
	assert.Empty(t, Conflicts(adv))
}
