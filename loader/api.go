package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua content constructors as globals.
//
//	Adventure { id = "...", title = "...", start = "..." }
//	Room "id" { title = "...", exits = { Exit {...} }, objects = { Object "id" {...} } }
//	Exit { direction = "...", to = "room-id", ... }
//	Object "id" { name = "...", pickupable = true, ... }
//	Feature { name = "...", aliases = {...}, text = "..." }
func registerAPI(L *lua.LState, coll *collector) {
	// Adventure { ... } — one per content directory.
	L.SetGlobal("Adventure", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.adventure = tbl
		return 0
	}))

	// Room "id" { ... } — curried: Room("id") returns a function that
	// takes the definition table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Object "id" { ... } — curried; returns a table tagged with the
	// object's ID so it can sit inline in a room's objects list.
	L.SetGlobal("Object", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			tbl.RawSetString("__object_id", lua.LString(id))
			L.Push(tbl)
			return 1
		}))
		return 1
	}))

	// Exit { ... } — pass-through, returns the table.
	L.SetGlobal("Exit", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		L.Push(tbl)
		return 1
	}))

	// Feature { ... } — pass-through, returns the table. Rooms may also
	// list plain strings for label-only scenery.
	L.SetGlobal("Feature", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		L.Push(tbl)
		return 1
	}))
}
