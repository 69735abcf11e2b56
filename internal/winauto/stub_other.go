//go:build !windows

package winauto

import markup2docx "github.com/alnah/go-markup2docx"

// Connector has no automation surface to attach to off Windows.
type Connector struct{}

// Connect implements markup2docx.EditorConnector.
func (Connector) Connect(markup2docx.AppKind) (markup2docx.Editor, error) {
	return nil, markup2docx.ErrUnsupportedPlatform
}

// ForegroundWindows has no window manager to query off Windows.
type ForegroundWindows struct{}

// ForegroundWindowTitle implements markup2docx.ForegroundQuerier.
func (ForegroundWindows) ForegroundWindowTitle() (string, error) {
	return "", markup2docx.ErrUnsupportedPlatform
}
