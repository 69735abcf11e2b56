package markup2docx

import "fmt"

// Format identifies a markup language by the name the converter understands.
type Format string

// Supported source formats.
const (
	FormatTypst    Format = "typst"
	FormatMarkdown Format = "markdown_mmd"
	FormatHTML     Format = "html"
)

// FormatDocx is the fixed target format of every conversion.
const FormatDocx Format = "docx"

// formatExtensions maps each format to its staging file extension. The
// converter's format identifier is the format name itself, so nothing else
// is needed per format. Read-only.
var formatExtensions = map[Format]string{
	FormatTypst:    "typ",
	FormatMarkdown: "md",
	FormatHTML:     "html",
	FormatDocx:     "docx",
}

// ParseFormat validates a source format name from configuration.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatTypst, FormatMarkdown, FormatHTML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (supported: %s, %s, %s)",
		ErrUnknownFormat, name, FormatTypst, FormatMarkdown, FormatHTML)
}

// Extension returns the staging file extension for the format.
func (f Format) Extension() string { return formatExtensions[f] }

func (f Format) String() string { return string(f) }
