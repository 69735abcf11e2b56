package main

import (
	"errors"

	markup2docx "github.com/alnah/go-markup2docx"
)

// Exit codes for the markup2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Normal shutdown
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or validation
	ExitConverter = 3 // Converter missing or broken
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, markup2docx.ErrConverterUnavailable) {
		return ExitConverter
	}

	if errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrBadHotkey) ||
		errors.Is(err, markup2docx.ErrUnknownFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
