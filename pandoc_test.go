package markup2docx

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// MockRunner records the invocation and plays back a scripted result.
type MockRunner struct {
	Output     string
	Err        error
	CalledWith []string
}

func (m *MockRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	m.CalledWith = append([]string{name}, args...)
	return m.Output, m.Err
}

func foundLookPath(name string) (string, error)   { return "/usr/bin/" + name, nil }
func missingLookPath(name string) (string, error) { return "", errors.New(name + " not in PATH") }

func TestPandocInvokerConvert(t *testing.T) {
	ctx := context.Background()

	t.Run("converter missing fails fast without writing files", func(t *testing.T) {
		scratch := t.TempDir()
		p := &PandocInvoker{Runner: &MockRunner{}, lookPath: missingLookPath}

		_, err := p.Convert(ctx, "# hi", FormatMarkdown, FormatDocx, scratch)
		if !errors.Is(err, ErrConverterUnavailable) {
			t.Fatalf("error = %v, want ErrConverterUnavailable", err)
		}
		entries, err := os.ReadDir(scratch)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("scratch dir not empty: %d entries", len(entries))
		}
	})

	t.Run("stages source with format extension and invokes pandoc", func(t *testing.T) {
		scratch := t.TempDir()
		runner := &MockRunner{}
		p := &PandocInvoker{Runner: runner, lookPath: foundLookPath}

		out, err := p.Convert(ctx, "x = 1", FormatTypst, FormatDocx, scratch)
		if err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}

		srcPath := filepath.Join(scratch, "source.typ")
		staged, err := os.ReadFile(srcPath)
		if err != nil {
			t.Fatalf("staging file not written: %v", err)
		}
		if string(staged) != "x = 1" {
			t.Errorf("staged content = %q, want %q", staged, "x = 1")
		}

		wantOut := filepath.Join(scratch, "fragment.docx")
		if out != wantOut {
			t.Errorf("output path = %q, want %q", out, wantOut)
		}

		want := []string{"pandoc", "-f", "typst", "-t", "docx", srcPath, "-o", wantOut}
		if len(runner.CalledWith) != len(want) {
			t.Fatalf("pandoc args = %v, want %v", runner.CalledWith, want)
		}
		for i := range want {
			if runner.CalledWith[i] != want[i] {
				t.Errorf("arg[%d] = %q, want %q", i, runner.CalledWith[i], want[i])
			}
		}
	})

	t.Run("markdown uses md extension", func(t *testing.T) {
		scratch := t.TempDir()
		p := &PandocInvoker{Runner: &MockRunner{}, lookPath: foundLookPath}

		if _, err := p.Convert(ctx, "# hi", FormatMarkdown, FormatDocx, scratch); err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(scratch, "source.md")); err != nil {
			t.Errorf("source.md not staged: %v", err)
		}
	})

	t.Run("nonzero exit carries diagnostics verbatim", func(t *testing.T) {
		scratch := t.TempDir()
		runner := &MockRunner{Output: "Error at line 3: unclosed bracket\n", Err: errors.New("exit status 64")}
		p := &PandocInvoker{Runner: runner, lookPath: foundLookPath}

		_, err := p.Convert(ctx, "bad [", FormatTypst, FormatDocx, scratch)
		if !errors.Is(err, ErrConversionFailed) {
			t.Fatalf("error = %v, want ErrConversionFailed", err)
		}

		var convErr *ConversionError
		if !errors.As(err, &convErr) {
			t.Fatalf("error is not a *ConversionError: %v", err)
		}
		if convErr.Diagnostics != "Error at line 3: unclosed bracket\n" {
			t.Errorf("Diagnostics = %q", convErr.Diagnostics)
		}
	})

	t.Run("start failure without output still reports something", func(t *testing.T) {
		scratch := t.TempDir()
		runner := &MockRunner{Err: errors.New("fork/exec: permission denied")}
		p := &PandocInvoker{Runner: runner, lookPath: foundLookPath}

		_, err := p.Convert(ctx, "x", FormatTypst, FormatDocx, scratch)
		var convErr *ConversionError
		if !errors.As(err, &convErr) {
			t.Fatalf("error is not a *ConversionError: %v", err)
		}
		if convErr.Diagnostics == "" {
			t.Error("Diagnostics empty for start failure")
		}
	})
}

func TestConversionErrorMessage(t *testing.T) {
	err := &ConversionError{From: FormatTypst, Diagnostics: "boom\n"}
	want := "converting typst to docx failed: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
