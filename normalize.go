package markup2docx

import (
	"regexp"
	"strings"
)

// crlfOrCR matches both Windows and bare-CR line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// softLineBreak is the control character the editor stores for a soft line
// break (Shift+Enter).
const softLineBreak = "\v"

// quoteFolder maps typographic quotes back to their ASCII equivalents.
var quoteFolder = strings.NewReplacer(
	"“", `"`, // left double
	"”", `"`, // right double
	"‘", "'", // left single
	"’", "'", // right single
)

// NormalizeOptions controls the optional normalization passes.
type NormalizeOptions struct {
	// StraightQuotes folds typographic quotes to ASCII. The editor
	// auto-corrects straight quotes to curly ones on input, which breaks
	// quote-sensitive markup such as typst string literals.
	StraightQuotes bool
}

// Normalize canonicalizes captured text before it reaches the converter.
// Line endings and soft line breaks fold to "\n" first; quote folding runs
// under its option flag. Pure and idempotent.
func Normalize(text string, opts NormalizeOptions) string {
	text = NormalizeLineEndings(text)
	text = strings.ReplaceAll(text, softLineBreak, "\n")
	if opts.StraightQuotes {
		text = quoteFolder.Replace(text)
	}
	return text
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(text string) string {
	return crlfOrCR.ReplaceAllString(text, "\n")
}
