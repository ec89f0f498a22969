package status

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	clock   lipgloss.Style
	account lipgloss.Style
	message lipgloss.Style
	rule    lipgloss.Style
	empty   lipgloss.Style
}

// newStyles binds the styles to w so color is dropped when w is not a
// color-capable terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true),
		clock:   r.NewStyle().Foreground(lipgloss.Color("241")),
		account: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		message: r.NewStyle().Foreground(lipgloss.Color("252")),
		rule:    r.NewStyle().Foreground(lipgloss.Color("238")),
		empty:   r.NewStyle().Faint(true),
	}
}
