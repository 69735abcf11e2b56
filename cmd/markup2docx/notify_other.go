//go:build !windows

package main

import "github.com/gen2brain/beeep"

// notifyError falls back to a desktop alert where no native modal dialog
// exists.
func notifyError(message string) {
	_ = beeep.Alert(appTitle, message, "")
}
