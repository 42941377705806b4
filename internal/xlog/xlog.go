// Package xlog is the ambient logging setup shared by the symmetry and
// searchspace packages: a thin wrapper over github.com/rs/zerolog that
// defaults to a disabled (Nop) logger so library code never talks unless a
// caller explicitly hands it a configured logger — no package-global
// logger, mirroring the teacher's no-hidden-globals discipline.
package xlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a human-readable console logger writing to w, suitable for the
// cmd/symplan demo binary and for tests that want to see diagnostic output.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

// Stderr is shorthand for New(os.Stderr).
func Stderr() zerolog.Logger {
	return New(os.Stderr)
}

// Nop returns a logger that discards everything — the default used by
// Group/SearchSpace when no logger is attached via their WithLogger methods.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
