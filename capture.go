package markup2docx

import (
	"fmt"
	"strings"
)

// Origin records which source produced a captured span.
type Origin string

// Span origins, in fallback order.
const (
	OriginSelection Origin = "selection"
	OriginClipboard Origin = "clipboard"
)

// CapturedSpan is one trigger's input: the captured text and its
// inline/block classification. Built fresh per trigger, never mutated.
type CapturedSpan struct {
	Text   string
	Inline bool
	Origin Origin
}

// ClipboardReader returns the current clipboard text content.
type ClipboardReader interface {
	ReadText() (string, error)
}

// paragraphMark is the paragraph separator in selection text ("\r" in the
// Word object model). Clipboard text uses plain "\n" instead.
const paragraphMark = "\r"

// IsInlineSelection reports whether selection text is a single-paragraph
// span: trimmed text containing no paragraph mark.
func IsInlineSelection(text string) bool {
	return !strings.Contains(strings.TrimSpace(text), paragraphMark)
}

// IsInlineClipboard reports whether clipboard text is a single-line span.
func IsInlineClipboard(text string) bool {
	return !strings.Contains(strings.TrimSpace(text), "\n")
}

// Acquirer obtains candidate text from the document selection or, failing
// that, the system clipboard. The two sources form an ordered fallback list:
// a source yielding only whitespace falls through to the next.
type Acquirer struct {
	Clipboard ClipboardReader
}

// Acquire returns the first non-empty span. Both sources empty after
// trimming is ErrNoInput.
func (a *Acquirer) Acquire(ed Editor) (CapturedSpan, error) {
	span, ok, err := a.fromSelection(ed)
	if err != nil {
		return CapturedSpan{}, err
	}
	if ok {
		return span, nil
	}

	span, ok, err = a.fromClipboard()
	if err != nil {
		return CapturedSpan{}, err
	}
	if ok {
		return span, nil
	}

	return CapturedSpan{}, ErrNoInput
}

func (a *Acquirer) fromSelection(ed Editor) (CapturedSpan, bool, error) {
	sel, err := ed.Selection()
	if err != nil {
		return CapturedSpan{}, false, fmt.Errorf("reading selection: %w", err)
	}
	text, err := sel.Text()
	if err != nil {
		return CapturedSpan{}, false, fmt.Errorf("reading selection text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return CapturedSpan{}, false, nil
	}

	inline := IsInlineSelection(text)
	if inline {
		// An inline selection reaching the end of the document's last
		// paragraph carries the implicit final paragraph mark; shrink the
		// selection by one character so it never reaches the converter.
		atEnd, err := sel.EndsAtLastParagraph()
		if err != nil {
			return CapturedSpan{}, false, fmt.Errorf("checking selection end: %w", err)
		}
		if atEnd {
			if err := sel.ShrinkEnd(); err != nil {
				return CapturedSpan{}, false, fmt.Errorf("shrinking selection: %w", err)
			}
			if text, err = sel.Text(); err != nil {
				return CapturedSpan{}, false, fmt.Errorf("re-reading selection text: %w", err)
			}
		}
	}

	return CapturedSpan{Text: text, Inline: inline, Origin: OriginSelection}, true, nil
}

func (a *Acquirer) fromClipboard() (CapturedSpan, bool, error) {
	if a.Clipboard == nil {
		return CapturedSpan{}, false, nil
	}
	text, err := a.Clipboard.ReadText()
	if err != nil {
		return CapturedSpan{}, false, fmt.Errorf("reading clipboard: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return CapturedSpan{}, false, nil
	}
	return CapturedSpan{Text: text, Inline: IsInlineClipboard(text), Origin: OriginClipboard}, true, nil
}
