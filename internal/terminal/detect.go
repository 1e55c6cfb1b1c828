// Package terminal holds everything that writes to an interactive terminal: detecting whether a stream is one, the
// spinner glyphs and the renderer that paints the status line.
package terminal

import (
	"io"

	"github.com/mattn/go-isatty"

	"github.com/rwx-research/wait-until/internal/errors"
)

// Mode controls whether the status line is rendered.
type Mode string

const (
	// ModeAuto renders only if the output stream is an interactive terminal.
	ModeAuto Mode = "auto"
	// ModeAlways renders regardless of the output stream.
	ModeAlways Mode = "always"
	// ModeNever never renders.
	ModeNever Mode = "never"
)

// Modes lists every supported mode, mainly for help texts.
var Modes = []Mode{ModeAuto, ModeAlways, ModeNever}

type fdProvider interface {
	Fd() uintptr
}

// IsInteractive reports whether w is connected to an interactive terminal. Writers without a file descriptor are never
// interactive.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(fdProvider)
	if !ok {
		return false
	}

	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ParseMode parses a user-supplied mode. The empty string is treated as ModeAuto.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeAuto, nil
	}

	for _, mode := range Modes {
		if string(mode) == s {
			return mode, nil
		}
	}

	return "", errors.NewConfigurationError("unknown spinner mode %q, expected one of %v", s, Modes)
}

// Interactive resolves the mode against the given output stream.
func (m Mode) Interactive(w io.Writer) bool {
	switch m {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return IsInteractive(w)
	}
}
