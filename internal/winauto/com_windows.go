//go:build windows

package winauto

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	markup2docx "github.com/alnah/go-markup2docx"
)

// ProgIDs of the supported word processors. WPS Office implements the Word
// automation object model under its own ProgID.
const (
	progIDWord = "Word.Application"
	progIDWPS  = "KWPS.Application"
)

// sFalse is the COM status for "already initialized on this thread".
const sFalse = 0x00000001

// Word object model constants for Selection.MoveLeft.
const (
	wdCharacter = 1
	wdExtend    = 1
)

func progID(app markup2docx.AppKind) string {
	if app == markup2docx.AppWPS {
		return progIDWPS
	}
	return progIDWord
}

// Connector attaches to the running word-processor instance over COM. Each
// Connect call initializes COM for the calling thread and dials the live
// application object; handles are never cached across triggers.
type Connector struct{}

// Connect implements markup2docx.EditorConnector. It fails when no instance
// of the target application is running.
func (Connector) Connect(app markup2docx.AppKind) (markup2docx.Editor, error) {
	if err := ole.CoInitialize(0); err != nil {
		if oleErr, ok := err.(*ole.OleError); !ok || oleErr.Code() != sFalse {
			return nil, fmt.Errorf("initializing COM: %w", err)
		}
	}

	id := progID(app)
	unknown, err := oleutil.GetActiveObject(id)
	if err != nil {
		return nil, fmt.Errorf("attaching to %s: %w", id, err)
	}
	disp, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		unknown.Release()
		return nil, fmt.Errorf("querying IDispatch on %s: %w", id, err)
	}

	return &comEditor{app: disp}, nil
}

// comEditor wraps the application dispatch object.
type comEditor struct {
	app *ole.IDispatch
}

func (e *comEditor) ActiveDocumentName() (string, error) {
	doc, err := oleutil.GetProperty(e.app, "ActiveDocument")
	if err != nil {
		return "", fmt.Errorf("no active document: %w", err)
	}
	docDisp := doc.ToIDispatch()
	defer docDisp.Release()

	name, err := oleutil.GetProperty(docDisp, "Name")
	if err != nil {
		return "", fmt.Errorf("reading document name: %w", err)
	}
	defer func() { _ = name.Clear() }()
	return name.ToString(), nil
}

func (e *comEditor) Selection() (markup2docx.Selection, error) {
	sel, err := oleutil.GetProperty(e.app, "Selection")
	if err != nil {
		return nil, fmt.Errorf("reading selection: %w", err)
	}
	return &comSelection{disp: sel.ToIDispatch()}, nil
}

// comSelection wraps the Selection dispatch object.
type comSelection struct {
	disp *ole.IDispatch
}

func (s *comSelection) Text() (string, error) {
	v, err := oleutil.GetProperty(s.disp, "Text")
	if err != nil {
		return "", fmt.Errorf("reading selection text: %w", err)
	}
	defer func() { _ = v.Clear() }()
	return v.ToString(), nil
}

func (s *comSelection) EndsAtLastParagraph() (bool, error) {
	selEnd, err := intProperty(s.disp, "End")
	if err != nil {
		return false, err
	}

	rng, err := nestedDispatch(s.disp, "Paragraphs", "Last", "Range")
	if err != nil {
		return false, err
	}
	defer rng.Release()

	lastEnd, err := intProperty(rng, "End")
	if err != nil {
		return false, err
	}
	return selEnd == lastEnd, nil
}

func (s *comSelection) ShrinkEnd() error {
	end, err := intProperty(s.disp, "End")
	if err != nil {
		return err
	}
	if _, err := oleutil.PutProperty(s.disp, "End", end-1); err != nil {
		return fmt.Errorf("shrinking selection end: %w", err)
	}
	return nil
}

func (s *comSelection) InsertFile(path string) error {
	if _, err := oleutil.CallMethod(s.disp, "InsertFile", path); err != nil {
		return fmt.Errorf("InsertFile: %w", err)
	}
	return nil
}

func (s *comSelection) MoveLeft() error {
	// wdCharacter unit, count 1, wdExtend: the crossed character ends up
	// selected so Text can inspect it.
	if _, err := oleutil.CallMethod(s.disp, "MoveLeft", wdCharacter, 1, wdExtend); err != nil {
		return fmt.Errorf("MoveLeft: %w", err)
	}
	return nil
}

func (s *comSelection) Delete() error {
	if _, err := oleutil.CallMethod(s.disp, "Delete"); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (s *comSelection) Style() (markup2docx.StyleRef, error) {
	v, err := oleutil.GetProperty(s.disp, "Style")
	if err != nil {
		return nil, fmt.Errorf("reading style: %w", err)
	}
	// The VARIANT itself is the opaque handle; SetStyle hands it back.
	return v, nil
}

func (s *comSelection) SetStyle(style markup2docx.StyleRef) error {
	v, ok := style.(*ole.VARIANT)
	if !ok {
		return fmt.Errorf("style handle is not a COM variant")
	}
	if _, err := oleutil.PutProperty(s.disp, "Style", v.Value()); err != nil {
		return fmt.Errorf("restoring style: %w", err)
	}
	return nil
}

// intProperty reads an integer-valued property.
func intProperty(disp *ole.IDispatch, name string) (int64, error) {
	v, err := oleutil.GetProperty(disp, name)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", name, err)
	}
	defer func() { _ = v.Clear() }()
	return v.Val, nil
}

// nestedDispatch walks a chain of dispatch-valued properties, releasing the
// intermediates. The caller releases the returned object.
func nestedDispatch(disp *ole.IDispatch, path ...string) (*ole.IDispatch, error) {
	cur := disp
	for i, name := range path {
		v, err := oleutil.GetProperty(cur, name)
		if i > 0 {
			cur.Release()
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		cur = v.ToIDispatch()
	}
	return cur, nil
}
