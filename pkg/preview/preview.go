// Package preview paints rendered blocks as one terminal line.
package preview

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/greshake/i3status-rust-sub000/pkg/bar"
	"github.com/greshake/i3status-rust-sub000/pkg/format"
	"github.com/greshake/i3status-rust-sub000/pkg/theme"
)

// Printer styles block outputs with a theme.
type Printer struct {
	r     *lipgloss.Renderer
	theme theme.Theme
}

// NewPrinter returns a printer for w. Output that is not a terminal gets no
// escape sequences; otherwise the color profile is detected from the
// environment.
func NewPrinter(w io.Writer, th theme.Theme) *Printer {
	r := lipgloss.NewRenderer(w)
	if !IsTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{r: r, theme: th}
}

// NewPrinterProfile returns a printer with a fixed color profile.
func NewPrinterProfile(w io.Writer, th theme.Theme, p termenv.Profile) *Printer {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(p))
	r.SetColorProfile(p)
	return &Printer{r: r, theme: th}
}

// IsTerminal reports whether w is a terminal, including Cygwin ptys.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Line joins the blocks with the theme separator and colors every fragment
// by its state. Blocks are included left to right; the first block that
// would exceed width ends the line. A width of zero or less is unlimited.
func (p *Printer) Line(outputs []bar.BlockOutput, width int) string {
	sep := " " + p.theme.Separator + " "
	sepWidth := ansi.StringWidth(sep)
	sepStyle := p.r.NewStyle()
	if p.theme.SeparatorFg != "" {
		sepStyle = sepStyle.Foreground(lipgloss.Color(p.theme.SeparatorFg))
	} else {
		sepStyle = sepStyle.Faint(true)
	}

	var (
		b     strings.Builder
		total int
		n     int
	)
	for _, out := range outputs {
		w := blockWidth(out.Fragments)
		if w == 0 {
			continue
		}
		needed := w
		if n > 0 {
			needed += sepWidth
		}
		if width > 0 && total+needed > width {
			break
		}
		if n > 0 {
			b.WriteString(sepStyle.Render(sep))
		}
		for _, f := range out.Fragments {
			b.WriteString(p.fragment(f))
		}
		total += needed
		n++
	}
	return b.String()
}

func (p *Printer) fragment(f format.Fragment) string {
	c := p.theme.For(f.Metadata.State)
	if c.Fg == "" && c.Bg == "" {
		return f.Text
	}
	st := p.r.NewStyle()
	if c.Fg != "" {
		st = st.Foreground(lipgloss.Color(c.Fg))
	}
	if c.Bg != "" {
		st = st.Background(lipgloss.Color(c.Bg))
	}
	return st.Render(f.Text)
}

func blockWidth(frags []format.Fragment) int {
	w := 0
	for _, f := range frags {
		w += ansi.StringWidth(f.Text)
	}
	return w
}
