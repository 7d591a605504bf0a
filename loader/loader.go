package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/mwhitby/advent/types"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	adventure *lua.LTable
	rooms     []rawRoom
}

// Load reads all .lua files from dir, compiles them into an Adventure,
// and validates references. The Lua VM is discarded after loading —
// zero Lua at runtime.
func Load(dir string) (*types.Adventure, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading adventure directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}

	// Sort: adventure.lua first, rest alphabetical. Room order follows
	// execution order, which makes listings deterministic.
	luaFiles = sortedLuaFiles(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		path := filepath.Join(dir, f)
		if err := L.DoFile(path); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	adv, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling adventure data: %w", err)
	}

	if err := validate(adv); err != nil {
		return nil, err
	}

	return adv, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}

// sortedLuaFiles returns .lua files with adventure.lua first and the
// rest sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var advFile string
	var others []string
	for _, f := range files {
		if f == "adventure.lua" {
			advFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if advFile != "" {
		return append([]string{advFile}, others...)
	}
	return others
}
