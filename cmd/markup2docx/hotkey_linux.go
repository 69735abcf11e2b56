//go:build linux

package main

import "golang.design/x/hotkey"

// modifierNames maps modifier tokens to X11 modifier codes. Mod1 is alt and
// Mod4 the super key on stock keymaps.
var modifierNames = map[string]hotkey.Modifier{
	"ctrl":    hotkey.ModCtrl,
	"control": hotkey.ModCtrl,
	"shift":   hotkey.ModShift,
	"alt":     hotkey.Mod1,
	"super":   hotkey.Mod4,
	"win":     hotkey.Mod4,
}
