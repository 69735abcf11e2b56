package main

import "github.com/gen2brain/beeep"

// appTitle labels desktop notifications and error dialogs.
const appTitle = "markup2docx"

// notifySuccess shows a non-blocking desktop notification.
func notifySuccess(message string) {
	_ = beeep.Notify(appTitle, message, "")
}
