package markup2docx

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alnah/go-markup2docx/internal/fileutil"
)

// Converter produces a rich-text fragment file from normalized markup text.
type Converter interface {
	Convert(ctx context.Context, text string, from, to Format, scratchDir string) (string, error)
}

// Collaborators are the OS-level surfaces the pipeline drives. The CLI wires
// real adapters; tests use fakes. Converter is optional and defaults to a
// pandoc subprocess invoker.
type Collaborators struct {
	Windows   ForegroundQuerier
	Editors   EditorConnector
	Clipboard ClipboardReader
	Converter Converter
}

// serviceConfig holds immutable pipeline settings derived at startup.
type serviceConfig struct {
	from           Format
	straightQuotes bool
	keepDir        string
}

// Option configures a Service.
type Option func(*Service)

// WithStraightQuotes folds typographic quotes to ASCII during normalization.
func WithStraightQuotes(on bool) Option {
	return func(s *Service) { s.cfg.straightQuotes = on }
}

// WithKeepFragment copies each converted fragment into dir before splicing,
// so it survives the scratch directory cleanup.
func WithKeepFragment(dir string) Option {
	return func(s *Service) { s.cfg.keepDir = dir }
}

// WithLogger sets the structured logger for pipeline events.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// Service orchestrates the capture, normalize, convert, and splice stages
// for one hotkey trigger at a time. Triggers run synchronously to completion
// or first failure; the design assumes human-paced triggering and does not
// serialize overlapping invocations.
type Service struct {
	cfg       serviceConfig
	guard     *Guard
	acquirer  *Acquirer
	converter Converter
	splicer   Splicer
	log       *slog.Logger
}

// New creates a Service converting from the given source format into the
// session identified by target.
func New(target SessionTarget, from Format, collab Collaborators, opts ...Option) *Service {
	s := &Service{
		cfg:       serviceConfig{from: from},
		guard:     &Guard{Target: target, Windows: collab.Windows, Editors: collab.Editors},
		acquirer:  &Acquirer{Clipboard: collab.Clipboard},
		converter: collab.Converter,
		log:       slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.converter == nil {
		s.converter = NewPandocInvoker()
	}

	return s
}

// Trigger runs one full pipeline pass: verify the foreground session,
// acquire text, normalize it, convert it to a fragment in a fresh scratch
// directory, and splice the fragment into the document. The scratch
// directory is removed on every exit path. ErrNoInput is the silent abort;
// all other errors should be surfaced to the user.
func (s *Service) Trigger(ctx context.Context) error {
	ed, err := s.guard.Verify()
	if err != nil {
		return err
	}
	s.log.Debug("foreground session verified", "app", string(s.guard.Target.App))

	span, err := s.acquirer.Acquire(ed)
	if err != nil {
		return err
	}
	s.log.Debug("captured span",
		"origin", string(span.Origin), "inline", span.Inline, "bytes", len(span.Text))

	text := Normalize(span.Text, NormalizeOptions{StraightQuotes: s.cfg.straightQuotes})

	scratchDir, err := os.MkdirTemp("", "markup2docx-*")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(scratchDir) }()

	fragment, err := s.converter.Convert(ctx, text, s.cfg.from, FormatDocx, scratchDir)
	if err != nil {
		return err
	}

	if s.cfg.keepDir != "" {
		kept := filepath.Join(s.cfg.keepDir, filepath.Base(fragment))
		if err := fileutil.CopyFile(fragment, kept); err != nil {
			// The copy is a convenience, not a pipeline stage.
			s.log.Warn("keeping fragment copy failed", "error", err)
		}
	}

	sel, err := ed.Selection()
	if err != nil {
		return fmt.Errorf("reading selection: %w", err)
	}
	if err := s.splicer.Splice(sel, fragment, span.Inline); err != nil {
		return err
	}

	s.log.Info("converted and spliced",
		"from", s.cfg.from.String(), "origin", string(span.Origin), "inline", span.Inline)
	return nil
}
