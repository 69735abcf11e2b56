package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"go.uber.org/automaxprocs/maxprocs"
	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	markup2docx "github.com/alnah/go-markup2docx"
	"github.com/alnah/go-markup2docx/internal/winauto"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args, DefaultEnv()))
}

// run dispatches subcommands and starts the hotkey listener.
func run(args []string, env *Environment) int {
	if len(args) > 1 {
		switch args[1] {
		case "doctor":
			return runDoctorCmd(args[2:], env)
		case "version":
			fmt.Fprintf(env.Stdout, "markup2docx %s\n", Version)
			return ExitSuccess
		case "help", "-h", "--help":
			printUsage(env.Stdout)
			return ExitSuccess
		}
	}

	flags, fs, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return ExitUsage
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "markup2docx %s\n", Version)
		return ExitSuccess
	}

	cfg := DefaultConfig()
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		cfg = loaded
	}
	mergeFlags(cfg, flags, fs)
	cfg.applyDefaults()

	from, err := markup2docx.ParseFormat(cfg.From)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	app, err := markup2docx.ParseAppKind(cfg.App)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	mods, key, err := parseHotkey(cfg.Hotkey)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	pattern := cfg.TitlePattern
	if pattern == "" {
		pattern = app.DefaultTitlePattern()
	}

	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []markup2docx.Option{
		markup2docx.WithStraightQuotes(cfg.StraightQuotes),
		markup2docx.WithLogger(log),
	}
	if cfg.KeepFragment != "" {
		opts = append(opts, markup2docx.WithKeepFragment(cfg.KeepFragment))
	}

	svc := markup2docx.New(
		markup2docx.SessionTarget{TitlePattern: pattern, App: app},
		from,
		markup2docx.Collaborators{
			Windows:   winauto.ForegroundWindows{},
			Editors:   winauto.Connector{},
			Clipboard: markup2docx.SystemClipboard{},
		},
		opts...,
	)

	fmt.Fprintf(env.Stdout, "Auto-converting from %s to docx\n", from)
	fmt.Fprintf(env.Stdout, "Press %s to convert the current selection\n", cfg.Hotkey)

	code := ExitSuccess
	mainthread.Init(func() {
		code = listen(svc, mods, key, cfg.Notify, log, env)
	})
	return code
}

// listen registers the hotkey and runs one pipeline pass per keydown until
// interrupted. Triggers run synchronously: a keypress during a running
// pipeline is not queued.
func listen(svc *markup2docx.Service, mods []hotkey.Modifier, key hotkey.Key, notify bool, log *slog.Logger, env *Environment) int {
	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		fmt.Fprintf(env.Stderr, "registering hotkey: %v\n", err)
		return ExitGeneral
	}
	defer func() { _ = hk.Unregister() }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	for {
		select {
		case <-hk.Keydown():
			handleTrigger(svc, notify, log)
		case <-sig:
			fmt.Fprintln(env.Stdout, "Shutting down")
			return ExitSuccess
		}
	}
}

// handleTrigger surfaces one trigger's outcome: no-input aborts are silent,
// every other failure is shown to the user before the next trigger.
func handleTrigger(svc *markup2docx.Service, notify bool, log *slog.Logger) {
	switch err := svc.Trigger(context.Background()); {
	case err == nil:
		if notify {
			notifySuccess("Converted and inserted.")
		}
	case errors.Is(err, markup2docx.ErrNoInput):
		log.Debug("nothing to convert")
	default:
		log.Error("trigger failed", "error", err)
		notifyError(err.Error())
	}
}
