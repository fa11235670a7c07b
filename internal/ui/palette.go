// Package ui renders colored terminal output. Color is applied only at
// render time; redirected or piped output stays plain.
package ui

import "github.com/fatih/color"

// Palette colors the five output roles used across the shell.
type Palette struct {
	enabled   bool
	success   *color.Color
	failure   *color.Color
	warning   *color.Color
	info      *color.Color
	highlight *color.Color
}

// NewPalette returns a palette. A disabled palette passes text through
// unchanged.
func NewPalette(enabled bool) *Palette {
	return &Palette{
		enabled:   enabled,
		success:   color.New(color.FgHiGreen),
		failure:   color.New(color.FgRed),
		warning:   color.New(color.FgYellow),
		info:      color.New(color.FgHiCyan),
		highlight: color.New(color.FgHiMagenta),
	}
}

// Plain returns a palette that never colors.
func Plain() *Palette { return NewPalette(false) }

// Enabled reports whether the palette colors its output.
func (p *Palette) Enabled() bool { return p.enabled }

func (p *Palette) apply(c *color.Color, s string) string {
	if !p.enabled {
		return s
	}
	return forceSprint(c, s)
}

// fatih/color consults the global color.NoColor at render time. The
// palette already decided, so force output on.
func forceSprint(c *color.Color, s string) string {
	clone := *c
	clone.EnableColor()
	return clone.Sprint(s)
}

// Success colors text for successful or file-name output.
func (p *Palette) Success(s string) string { return p.apply(p.success, s) }

// Error colors error messages.
func (p *Palette) Error(s string) string { return p.apply(p.failure, s) }

// Warning colors warnings.
func (p *Palette) Warning(s string) string { return p.apply(p.warning, s) }

// Info colors informational output such as paths and sizes.
func (p *Palette) Info(s string) string { return p.apply(p.info, s) }

// Highlight colors emphasized output such as directories and headers.
func (p *Palette) Highlight(s string) string { return p.apply(p.highlight, s) }

// Detect resolves a color mode ("auto", "always", "never") against the
// terminal environment.
func Detect(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		// color.NoColor already folds in NO_COLOR and tty detection.
		return !color.NoColor
	}
}
