package markup2docx

import (
	"fmt"
	"strings"
)

// AppKind selects which word processor the tool targets.
type AppKind string

// Supported host applications.
const (
	AppWord AppKind = "word"
	AppWPS  AppKind = "wps"
)

// ParseAppKind validates an application name from configuration.
func ParseAppKind(name string) (AppKind, error) {
	switch a := AppKind(name); a {
	case AppWord, AppWPS:
		return a, nil
	}
	return "", fmt.Errorf("unknown application %q (supported: %s, %s)", name, AppWord, AppWPS)
}

// DefaultTitlePattern returns the usual window-title shape for the
// application, with the {doc} placeholder for the document name.
func (a AppKind) DefaultTitlePattern() string {
	if a == AppWPS {
		return docPlaceholder + " - WPS Office"
	}
	return docPlaceholder + " - Word"
}

// docPlaceholder marks where the active document's display name is
// substituted into a title pattern.
const docPlaceholder = "{doc}"

// SessionTarget identifies the editor session the hotkey may act on.
// Derived once from startup configuration, immutable afterwards.
type SessionTarget struct {
	// TitlePattern is the expected foreground window title with a {doc}
	// placeholder for the active document's display name.
	TitlePattern string
	App          AppKind
}

// ForegroundQuerier reads the title of the current foreground window.
type ForegroundQuerier interface {
	ForegroundWindowTitle() (string, error)
}

// EditorConnector obtains a fresh automation handle to the target editor.
type EditorConnector interface {
	Connect(app AppKind) (Editor, error)
}

// Guard verifies, at trigger time, that the intended editor window is the
// foreground window before any document mutation is attempted. The hotkey is
// global and fires regardless of focus; without this check a mutation could
// land in an unrelated application.
type Guard struct {
	Target  SessionTarget
	Windows ForegroundQuerier
	Editors EditorConnector
}

// Verify connects to the target editor and checks that the foreground window
// title equals Target.TitlePattern with the active document name substituted
// (exact string equality, not a prefix or substring match). The returned
// Editor is valid for the current trigger only; every trigger re-verifies
// from scratch so the pipeline never acts on a stale or switched document.
func (g *Guard) Verify() (Editor, error) {
	ed, err := g.Editors.Connect(g.Target.App)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrApplicationNotRunning, err)
	}

	doc, err := ed.ActiveDocumentName()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrApplicationNotRunning, err)
	}

	want := strings.ReplaceAll(g.Target.TitlePattern, docPlaceholder, doc)
	got, err := g.Windows.ForegroundWindowTitle()
	if err != nil {
		return nil, fmt.Errorf("reading foreground window title: %w", err)
	}
	if got != want {
		return nil, fmt.Errorf("%w: want %q, got %q", ErrWrongForegroundWindow, want, got)
	}

	return ed, nil
}
