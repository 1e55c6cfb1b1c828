package terminal

import (
	"fmt"
	"io"

	"github.com/rwx-research/wait-until/internal/errors"
)

// ANSI control sequences written by the Renderer.
const (
	ClearLine  = "\033[2K"
	HideCursor = "\033[?25l"
	ShowCursor = "\033[?25h"
)

type flusher interface {
	Flush() error
}

// Renderer paints a single, continuously overwritten status line. A non-interactive renderer is inert: none of its
// methods write anything, so redirected output never sees control bytes.
type Renderer struct {
	w           io.Writer
	interactive bool
}

// NewRenderer returns a renderer writing to w.
func NewRenderer(w io.Writer, interactive bool) *Renderer {
	return &Renderer{w: w, interactive: interactive}
}

// Interactive reports whether the renderer writes anything at all.
func (r *Renderer) Interactive() bool {
	return r.interactive
}

// RenderFrame overwrites the current line with the message followed by the glyph.
func (r *Renderer) RenderFrame(message string, glyph rune) error {
	return r.write(fmt.Sprintf("\r%s %c", message, glyph))
}

// ClearLine erases the current line and moves the cursor back to its start.
func (r *Renderer) ClearLine() error {
	return r.write("\r" + ClearLine)
}

// BeginSession hides the cursor. The returned session must be ended, typically with `defer`, to show it again.
func (r *Renderer) BeginSession() (*Session, error) {
	return &Session{r: r}, r.write(HideCursor)
}

func (r *Renderer) write(s string) error {
	if !r.interactive {
		return nil
	}

	if _, err := io.WriteString(r.w, s); err != nil {
		return errors.NewSystemError("unable to write to terminal: %w", err)
	}

	if f, ok := r.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return errors.NewSystemError("unable to flush terminal: %w", err)
		}
	}

	return nil
}

// Session is the period during which the cursor is hidden.
type Session struct {
	r     *Renderer
	ended bool
}

// End shows the cursor again. Only the first call has an effect.
func (s *Session) End() error {
	if s.ended {
		return nil
	}

	s.ended = true
	return s.r.write(ShowCursor)
}
