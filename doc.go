// Package markup2docx splices pandoc-converted markup into the active
// document of a word processor.
//
// A global hotkey captures the current selection (or, as a fallback, the
// clipboard), converts it from a markup format such as typst or markdown to
// a docx fragment via pandoc, and inserts the fragment back at the original
// location, preserving the surrounding formatting.
//
// # Quick Start
//
// Build a Service with the OS adapters and run one pipeline pass per hotkey
// trigger:
//
//	target := markup2docx.SessionTarget{
//	    TitlePattern: "{doc} - Word",
//	    App:          markup2docx.AppWord,
//	}
//	svc := markup2docx.New(target, markup2docx.FormatTypst, markup2docx.Collaborators{
//	    Windows:   winauto.ForegroundWindows{},
//	    Editors:   winauto.Connector{},
//	    Clipboard: markup2docx.SystemClipboard{},
//	})
//
//	if err := svc.Trigger(ctx); err != nil && !errors.Is(err, markup2docx.ErrNoInput) {
//	    // surface to the user
//	}
//
// # Pipeline
//
// Each trigger runs these stages synchronously, aborting on the first
// failure:
//
//  1. Foreground session verification (window title must match the target)
//  2. Source acquisition (selection, then clipboard) with inline/block
//     classification
//  3. Text normalization (line endings, soft breaks, optional quote folding)
//  4. Conversion to a docx fragment via the pandoc subprocess
//  5. Splicing the fragment into the document, with trailing-break repair
//     and style restoration for inline spans
//
// The scratch directory staging the conversion is removed on every exit
// path. A document mutation is only ever attempted after the foreground
// check has passed for the current trigger.
//
// # Converter Requirements
//
// Conversion requires pandoc on PATH. The subprocess is invoked as
//
//	pandoc -f <from> -t docx <source> -o <fragment>
//
// and a nonzero exit surfaces pandoc's combined stdout and stderr verbatim
// in a ConversionError.
//
// # Host Applications
//
// Microsoft Word and WPS Office are supported through COM automation
// adapters in internal/winauto. On other platforms the adapters fail with
// ErrUnsupportedPlatform; the pipeline itself is platform-neutral and fully
// testable with fakes.
package markup2docx
