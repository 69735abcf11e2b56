package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func testEnv() (*Environment, *bytes.Buffer) {
	var out bytes.Buffer
	return &Environment{
		Stdout:   &out,
		Stderr:   &out,
		LookPath: func(string) (string, error) { return "", errors.New("not found") },
	}, &out
}

func TestDoctorConverterMissing(t *testing.T) {
	env, out := testEnv()

	code := runDoctorCmd(nil, env)
	if code != ExitGeneral {
		t.Fatalf("exit code = %d, want %d", code, ExitGeneral)
	}
	report := out.String()
	if !strings.Contains(report, "Status: errors") {
		t.Errorf("report missing error status:\n%s", report)
	}
	if !strings.Contains(report, "Pandoc: not found") {
		t.Errorf("report missing pandoc hint:\n%s", report)
	}
}

func TestDoctorConverterFound(t *testing.T) {
	env, _ := testEnv()
	env.LookPath = func(name string) (string, error) {
		if name != "pandoc" {
			t.Errorf("LookPath(%q), want pandoc", name)
		}
		// A path that resolves but won't execute; the version probe is
		// best-effort and leaves Version empty on failure.
		return "/nonexistent/pandoc", nil
	}

	result := runDoctor(env)
	if result.Status != "ready" {
		t.Fatalf("status = %q, want ready (errors: %v)", result.Status, result.Errors)
	}
	if !result.Pandoc.Found || result.Pandoc.Path != "/nonexistent/pandoc" {
		t.Errorf("pandoc info = %+v", result.Pandoc)
	}
	if !result.System.TempWritable {
		t.Error("temp dir reported unwritable")
	}
}

func TestDoctorJSONOutput(t *testing.T) {
	env, out := testEnv()

	code := runDoctorCmd([]string{"--json"}, env)
	if code != ExitGeneral {
		t.Fatalf("exit code = %d, want %d", code, ExitGeneral)
	}

	var result doctorResult
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if result.Status != "errors" {
		t.Errorf("status = %q, want errors", result.Status)
	}
	if result.Pandoc.Found {
		t.Error("pandoc reported found")
	}
	if len(result.Errors) == 0 {
		t.Error("errors list empty")
	}
}
