//go:build windows

package winauto

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetForegroundWindow = user32.NewProc("GetForegroundWindow")
	procGetWindowTextW      = user32.NewProc("GetWindowTextW")
	procMessageBoxW         = user32.NewProc("MessageBoxW")
)

// MB_ICONERROR for MessageBoxW.
const mbIconError = 0x00000010

// ForegroundWindows reads foreground window titles via user32. Synchronous
// and non-blocking.
type ForegroundWindows struct{}

// ForegroundWindowTitle implements markup2docx.ForegroundQuerier.
func (ForegroundWindows) ForegroundWindowTitle() (string, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return "", errors.New("no foreground window")
	}

	// Window titles are well under 512 runes in practice.
	buf := make([]uint16, 512)
	n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	// n == 0 covers both an empty title and a query failure; an empty title
	// never matches a {doc} pattern, so report it as is.
	return windows.UTF16ToString(buf[:n]), nil
}

// MessageBoxError shows a blocking modal error dialog anchored to the
// current foreground window.
func MessageBoxError(title, message string) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	m, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	_, _, _ = procMessageBoxW.Call(hwnd,
		uintptr(unsafe.Pointer(m)), uintptr(unsafe.Pointer(t)), mbIconError)
}
