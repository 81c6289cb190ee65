// script.go - Lua-scripted test-vector generation, grounded on the
// teacher's direct gopher-lua dependency (used there to drive its
// assembler tooling).
//
// A script manipulates one or more oscillators via a userdata type and
// calls emit(osc) to append a CSV row for the oscillator's current
// state before stepping it forward itself.
package main

import (
	"bufio"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

const luaOscillatorTypeName = "oscillator"

// runScript executes the Lua program at scriptPath, exposing an
// "oscillator" userdata type and a global emit(osc) function that
// appends "phi; sample" rows to out.
func runScript(scriptPath, out string) error {
	w, closeW, err := openCSVWriter(out)
	if err != nil {
		return err
	}
	defer closeW()

	L := lua.NewState()
	defer L.Close()

	registerOscillatorType(L)
	L.SetGlobal("emit", L.NewFunction(luaEmit(w)))
	L.SetGlobal("new_oscillator", L.NewFunction(luaNewOscillator))

	if err := L.DoFile(scriptPath); err != nil {
		return fmt.Errorf("script %s: %w", scriptPath, err)
	}
	return nil
}

func registerOscillatorType(L *lua.LState) {
	mt := L.NewTypeMetatable(luaOscillatorTypeName)
	L.SetGlobal(luaOscillatorTypeName, mt)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"set_freq": luaSetFreq,
		"set_phi":  luaSetPhi,
		"set_att":  luaSetAtt,
		"set_pp":   luaSetPP,
		"step":     luaStep,
		"output":   luaOutput,
		"phi":      luaGetPhi,
	}))
}

func luaNewOscillator(L *lua.LState) int {
	osc := NewOscillator()
	ud := L.NewUserData()
	ud.Value = osc
	L.SetMetatable(ud, L.GetTypeMetatable(luaOscillatorTypeName))
	L.Push(ud)
	return 1
}

func checkOscillator(L *lua.LState, idx int) *Oscillator {
	ud := L.CheckUserData(idx)
	osc, ok := ud.Value.(*Oscillator)
	if !ok {
		L.ArgError(idx, "oscillator expected")
	}
	return osc
}

func luaSetFreq(L *lua.LState) int {
	checkOscillator(L, 1).SetFreq(UQ016(L.CheckInt(2)))
	return 0
}

func luaSetPhi(L *lua.LState) int {
	checkOscillator(L, 1).SetPhi(UQ016(L.CheckInt(2)))
	return 0
}

func luaSetAtt(L *lua.LState) int {
	checkOscillator(L, 1).SetAtt(UQ016(L.CheckInt(2)))
	return 0
}

func luaSetPP(L *lua.LState) int {
	checkOscillator(L, 1).SetPP(L.CheckBool(2))
	return 0
}

func luaStep(L *lua.LState) int {
	checkOscillator(L, 1).Step()
	return 0
}

func luaOutput(L *lua.LState) int {
	s := checkOscillator(L, 1).Output()
	L.Push(lua.LNumber(s))
	return 1
}

func luaGetPhi(L *lua.LState) int {
	L.Push(lua.LNumber(checkOscillator(L, 1).Phi()))
	return 1
}

// luaEmit returns the emit(osc) global: it appends one CSV row for
// osc's current phi/sample pair, matching runFixed's line format.
func luaEmit(w *bufio.Writer) lua.LGFunction {
	return func(L *lua.LState) int {
		osc := checkOscillator(L, 1)
		fmt.Fprintf(w, "%d; %d\n", osc.Phi(), osc.Output())
		return 0
	}
}
