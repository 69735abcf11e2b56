package markup2docx

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pipeline operations.
var (
	// ErrNoInput means both the selection and the clipboard were empty after
	// trimming. Callers abort silently: there is nothing to convert and
	// nothing to report.
	ErrNoInput = errors.New("no input available")

	// Foreground session guard errors.
	ErrApplicationNotRunning = errors.New("document editor is not running")
	ErrWrongForegroundWindow = errors.New("foreground window is not the target document")

	// Converter invoker errors.
	ErrConverterUnavailable = errors.New("pandoc not found in PATH")
	ErrConversionFailed     = errors.New("conversion failed")

	// Document splicer errors.
	ErrUnexpectedDocumentState = errors.New("unexpected document state")

	// Format validation errors.
	ErrUnknownFormat = errors.New("unknown source format")

	// ErrUnsupportedPlatform is returned by adapter constructors on
	// platforms without a document automation backend.
	ErrUnsupportedPlatform = errors.New("document automation is not supported on this platform")
)

// ConversionError reports a converter subprocess failure together with the
// diagnostics it printed on stdout and stderr.
type ConversionError struct {
	From        Format
	Diagnostics string
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("converting %s to docx failed", e.From)
	if d := strings.TrimSpace(e.Diagnostics); d != "" {
		msg += ": " + d
	}
	return msg
}

// Unwrap lets errors.Is match ErrConversionFailed.
func (e *ConversionError) Unwrap() error { return ErrConversionFailed }
