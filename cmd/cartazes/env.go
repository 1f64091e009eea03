package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvFile is read from the working directory at startup.
const dotEnvFile = ".env"

// Environment holds injectable dependencies for testability.
// Includes I/O and environment variable lookup.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
}

// DefaultEnv returns the production environment. Variables from a .env file
// in the working directory fill in what the process environment leaves unset.
func DefaultEnv() *Environment {
	dot, err := loadDotEnv(dotEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring %s: %v\n", dotEnvFile, err)
	}
	return newEnvironment(os.Stdout, os.Stderr, os.LookupEnv, os.Environ, dot)
}

// newEnvironment layers dot under the process environment.
func newEnvironment(stdout, stderr io.Writer, lookup func(string) (string, bool),
	environ func() []string, dot map[string]string) *Environment {
	return &Environment{
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(key string) string {
			if v, ok := lookup(key); ok {
				return v
			}
			return dot[key]
		},
		Environ: func() []string {
			vars := environ()
			for k, v := range dot {
				if _, ok := lookup(k); !ok {
					vars = append(vars, k+"="+v)
				}
			}
			return vars
		},
	}
}

// loadDotEnv parses a .env file without touching the process environment.
// A missing file is not an error.
func loadDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return vars, err
}
