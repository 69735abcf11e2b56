package main

import (
	"errors"
	"fmt"
	"strings"

	"golang.design/x/hotkey"
)

// ErrBadHotkey reports an unparseable hotkey spec.
var ErrBadHotkey = errors.New("invalid hotkey")

// keyNames maps the final token of a hotkey spec to a key code. Letters,
// digits, and space cover the practical range; modifier names live in the
// per-platform tables.
var keyNames = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"space": hotkey.KeySpace,
}

// parseHotkey parses a spec like "ctrl+shift+t" into modifiers and a key.
// The last token is the key; every token before it is a modifier. At least
// one modifier is required: a bare key would shadow normal typing.
func parseHotkey(spec string) ([]hotkey.Modifier, hotkey.Key, error) {
	tokens := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "+")
	if len(tokens) < 2 {
		return nil, 0, fmt.Errorf("%w: %q (want modifier+key, e.g. ctrl+shift+t)", ErrBadHotkey, spec)
	}

	mods := make([]hotkey.Modifier, 0, len(tokens)-1)
	for _, tok := range tokens[:len(tokens)-1] {
		mod, ok := modifierNames[strings.TrimSpace(tok)]
		if !ok {
			return nil, 0, fmt.Errorf("%w: unknown modifier %q", ErrBadHotkey, tok)
		}
		mods = append(mods, mod)
	}

	keyTok := strings.TrimSpace(tokens[len(tokens)-1])
	key, ok := keyNames[keyTok]
	if !ok {
		return nil, 0, fmt.Errorf("%w: unknown key %q", ErrBadHotkey, keyTok)
	}

	return mods, key, nil
}
