package markup2docx

import "github.com/atotto/clipboard"

// SystemClipboard reads the OS clipboard.
type SystemClipboard struct{}

// ReadText returns the current clipboard text content, or empty when the
// clipboard holds no text.
func (SystemClipboard) ReadText() (string, error) {
	return clipboard.ReadAll()
}
