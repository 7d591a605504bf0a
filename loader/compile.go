// Package loader loads Lua adventure content into Go structs at startup.
package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/mwhitby/advent/types"
)

// rawRoom holds a room table before compilation.
type rawRoom struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or false if missing.
func getBool(tbl *lua.LTable, key string) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return false
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// toStringSlice converts a Lua array of strings to a Go slice.
func toStringSlice(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// compile converts all collected Lua data into an Adventure.
func compile(coll *collector) (*types.Adventure, error) {
	if coll.adventure == nil {
		return nil, fmt.Errorf("no Adventure{} definition found")
	}

	adv := &types.Adventure{
		ID:             getString(coll.adventure, "id"),
		Title:          getString(coll.adventure, "title"),
		Description:    getString(coll.adventure, "description"),
		StartingRoomID: getString(coll.adventure, "start"),
	}

	for _, raw := range coll.rooms {
		room, err := compileRoom(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling room %s: %w", raw.id, err)
		}
		adv.Rooms = append(adv.Rooms, room)
	}

	return adv, nil
}

func compileRoom(raw rawRoom) (*types.Room, error) {
	tbl := raw.table
	room := &types.Room{
		ID:          raw.id,
		Title:       getString(tbl, "title"),
		Description: getString(tbl, "description"),
	}

	if exits := getTable(tbl, "exits"); exits != nil {
		for i := 1; i <= exits.MaxN(); i++ {
			exitTbl, ok := exits.RawGetInt(i).(*lua.LTable)
			if !ok {
				return nil, fmt.Errorf("exit %d is not a table", i)
			}
			room.Exits = append(room.Exits, compileExit(exitTbl))
		}
	}

	if objects := getTable(tbl, "objects"); objects != nil {
		for i := 1; i <= objects.MaxN(); i++ {
			objTbl, ok := objects.RawGetInt(i).(*lua.LTable)
			if !ok {
				return nil, fmt.Errorf("object %d is not a table", i)
			}
			obj, err := compileObject(objTbl)
			if err != nil {
				return nil, err
			}
			room.Objects = append(room.Objects, obj)
		}
	}

	if features := getTable(tbl, "features"); features != nil {
		for i := 1; i <= features.MaxN(); i++ {
			room.Features = append(room.Features, compileFeature(features.RawGetInt(i)))
		}
	}

	return room, nil
}

func compileExit(tbl *lua.LTable) types.Exit {
	return types.Exit{
		Direction:      getString(tbl, "direction"),
		TargetRoomID:   getString(tbl, "to"),
		Description:    getString(tbl, "description"),
		IsHidden:       getBool(tbl, "hidden"),
		RequiresItem:   getString(tbl, "requires_item"),
		BlockedMessage: getString(tbl, "blocked_message"),
	}
}

func compileObject(tbl *lua.LTable) (types.GameObject, error) {
	id := getString(tbl, "__object_id")
	if id == "" {
		return types.GameObject{}, fmt.Errorf("object missing ID: use Object \"id\" { ... }")
	}

	obj := types.GameObject{
		ID:              id,
		Name:            getString(tbl, "name"),
		Aliases:         toStringSlice(getTable(tbl, "aliases")),
		Description:     getString(tbl, "description"),
		IsPickupable:    getBool(tbl, "pickupable"),
		IsExaminable:    getBool(tbl, "examinable"),
		IsReadable:      getBool(tbl, "readable"),
		IsWinTrigger:    getBool(tbl, "win_trigger"),
		ExaminationText: getString(tbl, "examination"),
		ReadableText:    getString(tbl, "reading"),
	}

	if reveal := getTable(tbl, "reveals_exit"); reveal != nil {
		obj.RevealsHiddenExit = &types.ExitReveal{
			Direction:     getString(reveal, "direction"),
			RevealMessage: getString(reveal, "message"),
		}
	}

	return obj, nil
}

// compileFeature accepts either a plain string label or a
// Feature { name = ..., aliases = ..., text = ... } table.
func compileFeature(v lua.LValue) types.Feature {
	switch val := v.(type) {
	case lua.LString:
		return types.Feature{Name: string(val)}
	case *lua.LTable:
		return types.Feature{
			Name:            getString(val, "name"),
			Aliases:         toStringSlice(getTable(val, "aliases")),
			ExaminationText: getString(val, "text"),
		}
	default:
		return types.Feature{}
	}
}
