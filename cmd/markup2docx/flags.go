package main

import (
	flag "github.com/spf13/pflag"
)

// runFlags holds all flags for the default listen mode.
type runFlags struct {
	config         string
	from           string
	app            string
	titlePattern   string
	straightQuotes bool
	hotkey         string
	keepFragment   string
	notify         bool
	verbose        bool
	version        bool
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*runFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("markup2docx", flag.ContinueOnError)
	f := &runFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.from, "from", "f", "", "source format: typst, markdown_mmd, html")
	fs.StringVar(&f.app, "app", "", "target application: word, wps")
	fs.StringVar(&f.titlePattern, "title-pattern", "", "expected window title with a {doc} placeholder")
	fs.BoolVar(&f.straightQuotes, "straight-quotes", false, "fold curly quotes to straight ASCII quotes")
	fs.StringVar(&f.hotkey, "hotkey", "", "trigger hotkey")
	fs.StringVar(&f.keepFragment, "keep-fragment", "", "directory to copy converted fragments into")
	fs.BoolVar(&f.notify, "notify", false, "desktop notification after each successful conversion")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose logging")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	// help.go owns the usage text; suppress pflag's default dump.
	fs.Usage = func() {}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs, nil
}

// mergeFlags overlays explicitly-set flags onto cfg. Flags win over the
// config file; unset flags leave the file values alone.
func mergeFlags(cfg *Config, f *runFlags, fs *flag.FlagSet) {
	if fs.Changed("from") {
		cfg.From = f.from
	}
	if fs.Changed("app") {
		cfg.App = f.app
	}
	if fs.Changed("title-pattern") {
		cfg.TitlePattern = f.titlePattern
	}
	if fs.Changed("straight-quotes") {
		cfg.StraightQuotes = f.straightQuotes
	}
	if fs.Changed("hotkey") {
		cfg.Hotkey = f.hotkey
	}
	if fs.Changed("keep-fragment") {
		cfg.KeepFragment = f.keepFragment
	}
	if fs.Changed("notify") {
		cfg.Notify = f.notify
	}
}
