package components

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors components draw with.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	KeyCap  lipgloss.Color
	Ink     lipgloss.Color
	RowBg   lipgloss.Color
	Error   lipgloss.Color
	ErrorFg lipgloss.Color
	Marker  lipgloss.Color
}

// DarkPalette is the default palette.
var DarkPalette = Palette{
	Primary: "#7f57b4",
	Accent:  "#436b77",
	Text:    "#d7d9da",
	Muted:   "#9ba0bf",
	Border:  "#273540",
	KeyCap:  "#888ba4",
	Ink:     "#16161d",
	RowBg:   "#1f2530",
	Error:   "#7a2f3a",
	ErrorFg: "#e06c75",
	Marker:  "#3f866b",
}

// LightPalette suits light terminal backgrounds.
var LightPalette = Palette{
	Primary: "#5b3a8c",
	Accent:  "#2f5561",
	Text:    "#1f2328",
	Muted:   "#5c6370",
	Border:  "#b8c2cc",
	KeyCap:  "#5c6370",
	Ink:     "#ffffff",
	RowBg:   "#e8ecf0",
	Error:   "#b33a4a",
	ErrorFg: "#a12638",
	Marker:  "#2d7a5a",
}

var palette = DarkPalette

// UsePalette switches every component style to p.
func UsePalette(p Palette) {
	palette = p
	buildStyles()
}

// CurrentPalette returns the palette in use.
func CurrentPalette() Palette { return palette }

var (
	boxBorder          lipgloss.Style
	boxBorderActive    lipgloss.Style
	boxHeaderStyle     lipgloss.Style
	boxMutedStyle      lipgloss.Style
	boxValueStyle      lipgloss.Style
	boxLabelStyle      lipgloss.Style
	errorBorder        lipgloss.Style
	errorHeaderStyle   lipgloss.Style
	errorBodyStyle     lipgloss.Style
	dialogStyle        lipgloss.Style
	hintKeyStyle       lipgloss.Style
	hintDescStyle      lipgloss.Style
	segmentStyle       lipgloss.Style
	gridLineStyle      lipgloss.Style
	gridActiveRowStyle lipgloss.Style
	gridActiveSepStyle lipgloss.Style
	gridMarkerStyle    lipgloss.Style
)

func init() { buildStyles() }

func buildStyles() {
	p := palette
	boxBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)
	boxBorderActive = boxBorder.BorderForeground(p.Primary)
	boxHeaderStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	boxMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	boxValueStyle = lipgloss.NewStyle().Foreground(p.Text)
	boxLabelStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)

	errorBorder = boxBorder.BorderForeground(p.Error)
	errorHeaderStyle = lipgloss.NewStyle().Foreground(p.ErrorFg).Bold(true)
	errorBodyStyle = lipgloss.NewStyle().Foreground(p.Text)

	dialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2).
		Width(44)

	hintKeyStyle = lipgloss.NewStyle().
		Foreground(p.Ink).
		Background(p.KeyCap).
		Bold(true).
		Padding(0, 1)
	hintDescStyle = lipgloss.NewStyle().Foreground(p.Muted)
	segmentStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		MarginRight(1)

	gridLineStyle = lipgloss.NewStyle().Foreground(p.Border)
	gridActiveRowStyle = lipgloss.NewStyle().Foreground(p.Text).Background(p.RowBg).Bold(true)
	gridActiveSepStyle = lipgloss.NewStyle().Foreground(p.Border).Background(p.RowBg)
	gridMarkerStyle = lipgloss.NewStyle().Foreground(p.Marker).Bold(true)
}
