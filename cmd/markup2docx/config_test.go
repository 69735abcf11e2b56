package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfigFromPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "work.yaml", `
from: markdown_mmd
app: wps
straightQuotes: true
hotkey: ctrl+alt+m
notify: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	want := Config{
		From:           "markdown_mmd",
		App:            "wps",
		StraightQuotes: true,
		Hotkey:         "ctrl+alt+m",
		Notify:         true,
	}
	if *cfg != want {
		t.Errorf("config = %+v, want %+v", *cfg, want)
	}
}

func TestLoadConfigEmptyName(t *testing.T) {
	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Fatalf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadConfig(missing); !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.yaml", "fromm: typst\n")

	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Fatalf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "broken.yaml", "from: [unclosed\n")

	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Fatalf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfigByNameInCwd(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "work.yml", "from: html\n")
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})

	cfg, err := LoadConfig("work")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.From != "html" {
		t.Errorf("From = %q, want html", cfg.From)
	}
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Config
	}{
		{
			name: "empty config gets all defaults",
			cfg:  Config{},
			want: Config{From: "typst", App: "word", Hotkey: "ctrl+shift+t"},
		},
		{
			name: "set fields preserved",
			cfg:  Config{From: "html", Notify: true},
			want: Config{From: "html", App: "word", Hotkey: "ctrl+shift+t", Notify: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.applyDefaults()
			if cfg != tt.want {
				t.Errorf("config = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}
