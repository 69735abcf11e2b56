package markup2docx

import "fmt"

// Splicer replaces the captured span in the live document with the converted
// fragment and repairs formatting for inline insertions.
type Splicer struct{}

// Splice inserts the fragment file at the selection, replacing it.
//
// The converter always terminates a docx fragment with a paragraph break, so
// an inline span picks up one unwanted trailing break on insertion. The
// repair moves the insertion point back one character, asserts that exactly
// the paragraph mark is now selected, deletes it, and restores the style
// captured before the insert. Any other trailing character means the
// converter output or document state diverged from the expected shape: the
// repair stops with ErrUnexpectedDocumentState and the inserted content is
// left as is.
//
// Block spans need no repair; their trailing paragraph break is correct for
// a multi-paragraph replacement.
func (Splicer) Splice(sel Selection, fragmentPath string, inline bool) error {
	var style StyleRef
	if inline {
		s, err := sel.Style()
		if err != nil {
			return fmt.Errorf("capturing style: %w", err)
		}
		style = s
	}

	if err := sel.InsertFile(fragmentPath); err != nil {
		return fmt.Errorf("inserting fragment: %w", err)
	}

	if !inline {
		return nil
	}

	if err := sel.MoveLeft(); err != nil {
		return fmt.Errorf("moving to trailing break: %w", err)
	}
	trailing, err := sel.Text()
	if err != nil {
		return fmt.Errorf("reading trailing character: %w", err)
	}
	if trailing != paragraphMark {
		return fmt.Errorf("%w: expected trailing paragraph mark, got %q", ErrUnexpectedDocumentState, trailing)
	}
	if err := sel.Delete(); err != nil {
		return fmt.Errorf("deleting trailing break: %w", err)
	}
	if err := sel.SetStyle(style); err != nil {
		return fmt.Errorf("restoring style: %w", err)
	}

	return nil
}
