// Package lua exposes the copyline extension to host init scripts.
//
// The bridge installs a global `copyline` table so scripts can invoke the
// copy commands or use the formatter directly:
//
//	copyline.relative()             -- copy relative path with line
//	copyline.absolute()             -- copy absolute path with line
//	copyline.format("a/b.go", 12)   -- "a/b.go:12"
package lua

import (
	lua "github.com/yuin/gopher-lua"

	"copyline/internal/extension"
	"copyline/internal/pathfmt"
)

// ModuleName is the global table the bridge installs.
const ModuleName = "copyline"

// Bridge registers extension entry points into a Lua state.
type Bridge struct {
	ext *extension.Extension
}

// NewBridge creates a bridge for the given extension.
func NewBridge(ext *extension.Extension) *Bridge {
	return &Bridge{ext: ext}
}

// Register installs the copyline module into L.
func (b *Bridge) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "relative", L.NewFunction(b.relative))
	L.SetField(mod, "absolute", L.NewFunction(b.absolute))
	L.SetField(mod, "format", L.NewFunction(b.format))
	L.SetField(mod, "mode_name", L.NewFunction(b.modeName))

	L.SetGlobal(ModuleName, mod)
	return nil
}

// relative() -> nil
// Invokes the relative copy command.
func (b *Bridge) relative(L *lua.LState) int {
	if b.ext == nil {
		L.RaiseError("relative: no extension available")
		return 0
	}
	b.ext.CopyRelativePathWithLine()
	return 0
}

// absolute() -> nil
// Invokes the absolute copy command.
func (b *Bridge) absolute(L *lua.LState) int {
	if b.ext == nil {
		L.RaiseError("absolute: no extension available")
		return 0
	}
	b.ext.CopyAbsolutePathWithLine()
	return 0
}

// format(path, line) -> string
// Pure path:line formatting; the line is clamped to a minimum of 1.
func (b *Bridge) format(L *lua.LState) int {
	path := L.CheckString(1)
	line := L.CheckInt(2)

	L.Push(lua.LString(pathfmt.Format(path, line)))
	return 1
}

// mode_name(absolute) -> string
// Returns the display name of a path mode.
func (b *Bridge) modeName(L *lua.LState) int {
	mode := pathfmt.Relative
	if L.OptBool(1, false) {
		mode = pathfmt.Absolute
	}
	L.Push(lua.LString(mode.String()))
	return 1
}
