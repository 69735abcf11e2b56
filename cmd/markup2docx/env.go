package main

import (
	"io"
	"os"
	"os/exec"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout   io.Writer
	Stderr   io.Writer
	LookPath func(string) (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		LookPath: exec.LookPath,
	}
}
