package loader

import (
	"fmt"
	"strings"

	"github.com/mwhitby/advent/types"
)

// Conflict describes an object name or alias collision within a room.
// Conflicts don't fail a load — the first-match rule just makes one of
// the objects unreachable by that word — but authors want to know.
type Conflict struct {
	RoomID     string
	Word       string // the colliding name or alias, lowercased
	ObjectID   string
	ObjectName string
	OtherID    string
	OtherName  string
	IsAlias    bool // the colliding word is an alias of ObjectID
}

func (c Conflict) String() string {
	kind := "name"
	if c.IsAlias {
		kind = "alias"
	}
	return fmt.Sprintf("room %q: %s %q of %q (%s) conflicts with %q (%s)",
		c.RoomID, kind, c.Word, c.ObjectName, c.ObjectID, c.OtherName, c.OtherID)
}

// Conflicts scans every room for object name/alias collisions. Pure
// pre-flight diagnostic over static content; the engine never consults
// it at runtime.
func Conflicts(adv *types.Adventure) []Conflict {
	var conflicts []Conflict

	for _, room := range adv.Rooms {
		type entry struct {
			objectID   string
			objectName string
		}
		seen := map[string]entry{}

		record := func(word string, obj types.GameObject, isAlias bool) {
			lower := strings.ToLower(word)
			if prev, ok := seen[lower]; ok {
				conflicts = append(conflicts, Conflict{
					RoomID:     room.ID,
					Word:       lower,
					ObjectID:   obj.ID,
					ObjectName: obj.Name,
					OtherID:    prev.objectID,
					OtherName:  prev.objectName,
					IsAlias:    isAlias,
				})
				return
			}
			seen[lower] = entry{objectID: obj.ID, objectName: obj.Name}
		}

		for _, obj := range room.Objects {
			record(obj.Name, obj, false)
			for _, alias := range obj.Aliases {
				record(alias, obj, true)
			}
		}
	}

	return conflicts
}
