package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/cardgraph/internal/ui/components"
)

// --- Reusable Styles ---

var (
	BannerStyle      lipgloss.Style
	TabActiveStyle   lipgloss.Style
	TabInactiveStyle lipgloss.Style
	TabNavStyle      lipgloss.Style
	SelectedStyle    lipgloss.Style
	NormalStyle      lipgloss.Style
	MutedStyle       lipgloss.Style
	AccentStyle      lipgloss.Style
	HeaderStyle      lipgloss.Style
	SuccessStyle     lipgloss.Style
	MetaKeyStyle     lipgloss.Style
	MetaValueStyle   lipgloss.Style
	PreviewBoxStyle  lipgloss.Style
)

func init() { buildStyles(components.DarkPalette) }

// ApplyTheme switches the UI and its components to the named theme.
// Unknown names fall back to dark.
func ApplyTheme(name string) {
	p := components.DarkPalette
	if name == "light" {
		p = components.LightPalette
	}
	components.UsePalette(p)
	buildStyles(p)
}

func buildStyles(p components.Palette) {
	BannerStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)

	TabActiveStyle = lipgloss.NewStyle().
		Foreground(p.Ink).
		Background(p.Primary).
		Bold(true).
		Padding(0, 1)
	TabInactiveStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)
	TabNavStyle = TabActiveStyle.Underline(true)

	SelectedStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	NormalStyle = lipgloss.NewStyle().Foreground(p.Text)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	AccentStyle = lipgloss.NewStyle().Foreground(p.Accent)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Marker)
	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true).
		PaddingBottom(1)

	MetaKeyStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	MetaValueStyle = lipgloss.NewStyle().Foreground(p.Text)
	PreviewBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
}
