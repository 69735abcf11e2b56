//go:build windows

package main

import "github.com/alnah/go-markup2docx/internal/winauto"

// notifyError shows a blocking modal dialog anchored to the foreground
// window, so the failure is seen before the next trigger.
func notifyError(message string) {
	winauto.MessageBoxError(appTitle, message)
}
