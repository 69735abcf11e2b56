package markup2docx

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// fakeSelection simulates selection-insert semantics over an in-memory
// document split into before/selected/after segments. InsertFile replaces
// the selected span with the file contents and leaves the insertion point
// after the inserted content, matching the host editor's behavior.
type fakeSelection struct {
	before string
	sel    string
	after  string

	endsAtLast bool
	style      StyleRef
	styleSets  []StyleRef

	textErr   error
	styleErr  error
	insertErr error
}

func (s *fakeSelection) Text() (string, error) {
	if s.textErr != nil {
		return "", s.textErr
	}
	return s.sel, nil
}

func (s *fakeSelection) EndsAtLastParagraph() (bool, error) {
	return s.endsAtLast, nil
}

func (s *fakeSelection) ShrinkEnd() error {
	if s.sel == "" {
		return errors.New("empty selection")
	}
	s.after = s.sel[len(s.sel)-1:] + s.after
	s.sel = s.sel[:len(s.sel)-1]
	return nil
}

func (s *fakeSelection) InsertFile(path string) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s.before += string(content)
	s.sel = ""
	return nil
}

func (s *fakeSelection) MoveLeft() error {
	if s.sel != "" {
		s.after = s.sel + s.after
		s.sel = ""
	}
	if s.before == "" {
		return errors.New("at start of document")
	}
	s.sel = s.before[len(s.before)-1:]
	s.before = s.before[:len(s.before)-1]
	return nil
}

func (s *fakeSelection) Delete() error {
	s.sel = ""
	return nil
}

func (s *fakeSelection) Style() (StyleRef, error) {
	if s.styleErr != nil {
		return nil, s.styleErr
	}
	return s.style, nil
}

func (s *fakeSelection) SetStyle(style StyleRef) error {
	s.styleSets = append(s.styleSets, style)
	return nil
}

// contents returns the whole document text.
func (s *fakeSelection) contents() string {
	return s.before + s.sel + s.after
}

type fakeEditor struct {
	name    string
	sel     *fakeSelection
	nameErr error
	selErr  error
}

func (e *fakeEditor) ActiveDocumentName() (string, error) {
	if e.nameErr != nil {
		return "", e.nameErr
	}
	return e.name, nil
}

func (e *fakeEditor) Selection() (Selection, error) {
	if e.selErr != nil {
		return nil, e.selErr
	}
	return e.sel, nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadText() (string, error) {
	return c.text, c.err
}

type fakeWindows struct {
	title string
	err   error
}

func (w *fakeWindows) ForegroundWindowTitle() (string, error) {
	return w.title, w.err
}

type fakeConnector struct {
	ed  Editor
	err error
}

func (c *fakeConnector) Connect(AppKind) (Editor, error) {
	return c.ed, c.err
}

// scriptedConverter writes a fixed fragment (or echoes its input when output
// is empty) into the scratch dir, recording the dirs it was handed.
type scriptedConverter struct {
	output      string
	err         error
	scratchDirs []string
}

func (c *scriptedConverter) Convert(_ context.Context, text string, _, _ Format, scratchDir string) (string, error) {
	c.scratchDirs = append(c.scratchDirs, scratchDir)
	if c.err != nil {
		return "", c.err
	}
	out := c.output
	if out == "" {
		out = text
	}
	path := filepath.Join(scratchDir, "fragment.docx")
	if err := os.WriteFile(path, []byte(out), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
