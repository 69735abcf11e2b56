package markup2docx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// converterName is the external converter executable.
const converterName = "pandoc"

// CommandRunner abstracts subprocess execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	// Run executes the command and returns its combined stdout and stderr.
	// A nonzero exit status is reported through err.
	Run(ctx context.Context, name string, args ...string) (output string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	return string(out), err
}

// PandocInvoker stages normalized text in a scratch directory and converts
// it to a rich-text fragment by invoking pandoc as a subprocess.
type PandocInvoker struct {
	Runner   CommandRunner
	lookPath func(string) (string, error) // stubbed in tests
}

// NewPandocInvoker creates an invoker backed by a real subprocess runner.
func NewPandocInvoker() *PandocInvoker {
	return &PandocInvoker{Runner: ExecRunner{}, lookPath: exec.LookPath}
}

// Convert writes text verbatim to a staging file in scratchDir and runs
//
//	pandoc -f <from> -t <to> <staging> -o <fragment>
//
// It fails with ErrConverterUnavailable before writing any files when pandoc
// is not on PATH, and with a ConversionError carrying pandoc's combined
// output on nonzero exit. The fragment path is returned only on success; no
// partial output is assumed to exist.
func (p *PandocInvoker) Convert(ctx context.Context, text string, from, to Format, scratchDir string) (string, error) {
	lookPath := p.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath(converterName); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConverterUnavailable, err)
	}

	srcPath := filepath.Join(scratchDir, "source."+from.Extension())
	if err := os.WriteFile(srcPath, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("writing staging file: %w", err)
	}

	outPath := filepath.Join(scratchDir, "fragment."+to.Extension())
	output, err := p.Runner.Run(ctx, converterName,
		"-f", from.String(), "-t", to.String(), srcPath, "-o", outPath)
	if err != nil {
		diag := output
		if diag == "" {
			diag = err.Error()
		}
		return "", &ConversionError{From: from, Diagnostics: diag}
	}

	return outPath, nil
}
