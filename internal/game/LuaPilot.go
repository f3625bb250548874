package game

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

const luaEntryPoint = "nextDirection"

// LuaPilot asks a Lua script for the evader's moves. The script must define
//
//	function nextDirection(state) ... end
//
// returning "up", "down", "left" or "right".
type LuaPilot struct {
	Name  string
	state *lua.LState
}

func NewLuaPilot(name, source string) (*LuaPilot, error) {
	luaState := lua.NewState()
	if err := luaState.DoString(source); err != nil {
		luaState.Close()
		return nil, fmt.Errorf("could not load lua pilot %s: %w", name, err)
	}
	return newLuaPilot(name, luaState)
}

func NewLuaPilotFromFile(path string) (*LuaPilot, error) {
	luaState := lua.NewState()
	if err := luaState.DoFile(path); err != nil {
		luaState.Close()
		return nil, fmt.Errorf("could not load lua pilot %s: %w", path, err)
	}
	return newLuaPilot(path, luaState)
}

func newLuaPilot(name string, luaState *lua.LState) (*LuaPilot, error) {
	if fn, ok := luaState.GetGlobal(luaEntryPoint).(*lua.LFunction); !ok || fn == nil {
		luaState.Close()
		return nil, fmt.Errorf("lua pilot %s does not define %s(state)", name, luaEntryPoint)
	}
	return &LuaPilot{Name: name, state: luaState}, nil
}

func (p *LuaPilot) NextDirection(snap Snapshot) (Direction, error) {
	err := p.state.CallByParam(lua.P{
		Fn:      p.state.GetGlobal(luaEntryPoint),
		NRet:    1,
		Protect: true,
	}, p.snapshotTable(snap))
	if err != nil {
		return NoDirection, fmt.Errorf("lua pilot %s failed: %w", p.Name, err)
	}

	ret := p.state.Get(-1)
	p.state.Pop(1)

	name, ok := ret.(lua.LString)
	if !ok {
		return NoDirection, fmt.Errorf("%w: lua pilot %s returned %s, expected string", ErrUnknownDirection, p.Name, ret.Type())
	}
	return ParseDirection(string(name))
}

func (p *LuaPilot) Close() {
	p.state.Close()
}

func (p *LuaPilot) snapshotTable(snap Snapshot) *lua.LTable {
	tbl := p.state.NewTable()
	p.state.SetField(tbl, "evader", p.positionTable(snap.State.EvaderPos))
	p.state.SetField(tbl, "pursuer", p.positionTable(snap.State.PursuerPos))
	p.state.SetField(tbl, "escape", p.positionTable(snap.Escape))
	p.state.SetField(tbl, "obstacle", p.positionTable(snap.Board.Obstacle))
	p.state.SetField(tbl, "size", lua.LNumber(snap.Board.Size))
	p.state.SetField(tbl, "turn", lua.LNumber(snap.Turn))
	p.state.SetField(tbl, "max_turns", lua.LNumber(snap.MaxTurns))
	return tbl
}

func (p *LuaPilot) positionTable(pos Position) *lua.LTable {
	tbl := p.state.NewTable()
	p.state.SetField(tbl, "col", lua.LNumber(pos.Col))
	p.state.SetField(tbl, "row", lua.LNumber(pos.Row))
	return tbl
}
