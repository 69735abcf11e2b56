//go:build windows

package main

import "golang.design/x/hotkey"

// modifierNames maps modifier tokens to Windows modifier codes.
var modifierNames = map[string]hotkey.Modifier{
	"ctrl":    hotkey.ModCtrl,
	"control": hotkey.ModCtrl,
	"shift":   hotkey.ModShift,
	"alt":     hotkey.ModAlt,
	"win":     hotkey.ModWin,
}
