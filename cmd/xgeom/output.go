package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"deedles.dev/xgeom/geom"
)

const (
	defaultWidth = 60
	maxWidth     = 80
)

type styles struct {
	header lipgloss.Style
	key    lipgloss.Style
	yes    lipgloss.Style
	no     lipgloss.Style
	width  int
}

// newStyles returns plain styles unless w is a terminal and color
// hasn't been turned off.
func newStyles(w io.Writer, noColor bool) styles {
	s := styles{
		header: lipgloss.NewStyle(),
		key:    lipgloss.NewStyle(),
		yes:    lipgloss.NewStyle(),
		no:     lipgloss.NewStyle(),
		width:  defaultWidth,
	}

	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return s
	}
	if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
		s.width = min(tw, maxWidth)
	}
	if noColor {
		return s
	}

	s.header = s.header.Bold(true).Foreground(lipgloss.Color("12"))
	s.key = s.key.Foreground(lipgloss.Color("245"))
	s.yes = s.yes.Bold(true).Foreground(lipgloss.Color("10"))
	s.no = s.no.Foreground(lipgloss.Color("9"))
	return s
}

func (s styles) rule() string {
	return s.key.Render(strings.Repeat("─", s.width))
}

func (s styles) bool(v bool) string {
	if v {
		return s.yes.Render("yes")
	}
	return s.no.Render("no")
}

func (s styles) field(name string, value string) string {
	return s.key.Render(name+":") + " " + value
}

func (s styles) rect(r geom.Rect) string {
	return "[" + formatFloat(r.Left) + " " + formatFloat(r.Top) + " " +
		formatFloat(r.Right) + " " + formatFloat(r.Bottom) + "]"
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
