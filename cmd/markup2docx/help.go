package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: markup2docx [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Listens for a global hotkey and converts the current selection (or the")
	fmt.Fprintln(w, "clipboard) from markup to docx, splicing the result back into the active")
	fmt.Fprintln(w, "document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor     Check that pandoc and the environment are ready")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --from <s>             Source format: typst, markdown_mmd, html (default typst)")
	fmt.Fprintln(w, "  -c, --config <s>           Config file name or path")
	fmt.Fprintln(w, "      --app <s>              Target application: word, wps (default word)")
	fmt.Fprintln(w, "      --title-pattern <s>    Expected window title with a {doc} placeholder")
	fmt.Fprintln(w, "      --straight-quotes      Fold curly quotes to straight ASCII quotes")
	fmt.Fprintln(w, "      --hotkey <s>           Trigger hotkey (default ctrl+shift+t)")
	fmt.Fprintln(w, "      --keep-fragment <dir>  Copy converted fragments into a directory")
	fmt.Fprintln(w, "      --notify               Desktop notification on success")
	fmt.Fprintln(w, "  -v, --verbose              Verbose logging")
	fmt.Fprintln(w, "      --version              Show version and exit")
}
