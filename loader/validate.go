package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/mwhitby/advent/types"
)

// ValidationError collects all validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled adventure for referential integrity.
// Hard errors fail the load; softer authoring issues (a reveal with no
// matching hidden exit) only warn, since the engine degrades to a
// silent no-op for those.
func validate(adv *types.Adventure) error {
	ve := &ValidationError{}

	if adv.Title == "" {
		ve.Errors = append(ve.Errors, "Adventure.title is required")
	}

	roomIDs := map[string]bool{}
	for _, room := range adv.Rooms {
		if roomIDs[room.ID] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate room ID %q", room.ID))
		}
		roomIDs[room.ID] = true
	}

	if adv.StartingRoomID == "" {
		ve.Errors = append(ve.Errors, "Adventure.start is required")
	} else if !roomIDs[adv.StartingRoomID] {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start room %q not found in defined rooms", adv.StartingRoomID))
	}

	// Object IDs must be unique across the whole adventure: exit gates
	// and inventory lookups reference them globally.
	objectIDs := map[string]bool{}
	for _, room := range adv.Rooms {
		for _, obj := range room.Objects {
			if objectIDs[obj.ID] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"duplicate object ID %q (room %q)", obj.ID, room.ID))
			}
			objectIDs[obj.ID] = true
			if obj.Name == "" {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"object %q in room %q has no name", obj.ID, room.ID))
			}
		}
	}

	for _, room := range adv.Rooms {
		for _, exit := range room.Exits {
			if exit.Direction == "" {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q has an exit with no direction", room.ID))
			}
			if !roomIDs[exit.TargetRoomID] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q exit %q points to undefined room %q",
					room.ID, exit.Direction, exit.TargetRoomID))
			}
			if exit.RequiresItem != "" && !objectIDs[exit.RequiresItem] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q exit %q requires undefined object %q",
					room.ID, exit.Direction, exit.RequiresItem))
			}
		}

		for _, obj := range room.Objects {
			if obj.RevealsHiddenExit == nil {
				continue
			}
			if i, ok := findExit(room, obj.RevealsHiddenExit.Direction); !ok || !room.Exits[i].IsHidden {
				fmt.Fprintf(os.Stderr, "warning: object %q reveals exit %q but room %q has no hidden exit there\n",
					obj.ID, obj.RevealsHiddenExit.Direction, room.ID)
			}
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func findExit(room *types.Room, direction string) (int, bool) {
	for i, e := range room.Exits {
		if strings.EqualFold(e.Direction, direction) {
			return i, true
		}
	}
	return -1, false
}
