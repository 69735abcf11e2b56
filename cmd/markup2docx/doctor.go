package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status string     `json:"status"` // "ready", "errors"
	Pandoc pandocInfo `json:"pandoc"`
	System systemInfo `json:"system"`
	Errors []string   `json:"errors,omitempty"`
}

// pandocInfo holds converter detection results.
type pandocInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	TempWritable bool   `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = ready, 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{OS: runtime.GOOS, Arch: runtime.GOARCH},
	}

	checkPandoc(result, env)
	checkTempDir(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	}
	return result
}

// checkPandoc detects the converter on PATH and reads its version line.
func checkPandoc(result *doctorResult, env *Environment) {
	path, err := env.LookPath("pandoc")
	if err != nil {
		result.Errors = append(result.Errors,
			"pandoc not found in PATH. Install it from https://pandoc.org")
		return
	}
	result.Pandoc.Found = true
	result.Pandoc.Path = path

	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- path comes from LookPath
	if err == nil {
		line, _, _ := strings.Cut(string(out), "\n")
		result.Pandoc.Version = strings.TrimSpace(line)
	}
}

// checkTempDir verifies the scratch-directory root is writable.
func checkTempDir(result *doctorResult) {
	f, err := os.CreateTemp("", "markup2docx-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("temp directory not writable: %v", err))
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	result.System.TempWritable = true
}

// printDoctorResult renders the human-readable report.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintf(w, "Status: %s\n", r.Status)
	if r.Pandoc.Found {
		fmt.Fprintf(w, "Pandoc: %s", r.Pandoc.Path)
		if r.Pandoc.Version != "" {
			fmt.Fprintf(w, " (%s)", r.Pandoc.Version)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "Pandoc: not found")
	}
	fmt.Fprintf(w, "System: %s/%s, temp writable: %v\n", r.System.OS, r.System.Arch, r.System.TempWritable)
	for _, e := range r.Errors {
		fmt.Fprintf(w, "Error: %s\n", e)
	}
}
