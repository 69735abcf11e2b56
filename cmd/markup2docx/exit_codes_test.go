package main

import (
	"errors"
	"fmt"
	"testing"

	markup2docx "github.com/alnah/go-markup2docx"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "converter missing", err: markup2docx.ErrConverterUnavailable, want: ExitConverter},
		{name: "wrapped converter missing", err: fmt.Errorf("startup: %w", markup2docx.ErrConverterUnavailable), want: ExitConverter},
		{name: "config not found", err: ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: ErrConfigParse, want: ExitUsage},
		{name: "bad hotkey", err: ErrBadHotkey, want: ExitUsage},
		{name: "unknown format", err: markup2docx.ErrUnknownFormat, want: ExitUsage},
		{name: "other error", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
