package markup2docx

// StyleRef is an opaque handle to the character/paragraph style at a
// position in the document. It is captured before an inline splice and
// reapplied after the trailing-break repair; callers never inspect it.
type StyleRef any

// Editor is the automation surface of the host word processor. One adapter
// exists per supported application (internal/winauto); tests use in-memory
// fakes. Handles are valid for a single trigger and never cached.
type Editor interface {
	// ActiveDocumentName returns the display name of the active document.
	// An error means the application is unreachable or no document is open.
	ActiveDocumentName() (string, error)

	// Selection returns the live selection of the active document.
	Selection() (Selection, error)
}

// Selection is the live selection range plus the insertion-point operations
// the pipeline needs. Methods mutate the document directly: InsertFile
// replaces the selection with the file contents and leaves the insertion
// point after the inserted content.
type Selection interface {
	// Text returns the raw selection text. Paragraph separators in
	// selection text are "\r".
	Text() (string, error)

	// EndsAtLastParagraph reports whether the selection end coincides with
	// the end of the document's last paragraph.
	EndsAtLastParagraph() (bool, error)

	// ShrinkEnd moves the selection end left by one character.
	ShrinkEnd() error

	// InsertFile inserts the contents of a document file at the selection,
	// replacing any selected span.
	InsertFile(path string) error

	// MoveLeft moves the insertion point left by one character, selecting
	// the character it moved over.
	MoveLeft() error

	// Delete removes the currently selected content.
	Delete() error

	// Style returns the style at the current position.
	Style() (StyleRef, error)

	// SetStyle applies a previously captured style at the current position.
	SetStyle(style StyleRef) error
}
