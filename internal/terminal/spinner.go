package terminal

// spinnerGlyphs is the fixed rotation of the spinner.
var spinnerGlyphs = [...]rune{'|', '/', '-', '\\'}

// Spinner cycles through spinnerGlyphs forever. The zero value starts at the first glyph.
type Spinner struct {
	index int
}

// NewSpinner returns a spinner positioned at the first glyph.
func NewSpinner() *Spinner {
	return new(Spinner)
}

// Next returns the current glyph and advances to the next one.
func (s *Spinner) Next() rune {
	glyph := spinnerGlyphs[s.index]
	s.index = (s.index + 1) % len(spinnerGlyphs)
	return glyph
}
