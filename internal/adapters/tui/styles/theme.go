package styles

import (
	"github.com/charmbracelet/lipgloss"

	"rapport/internal/domain"
)

// Palette is the set of colors one theme paints with
type Palette struct {
	Primary   lipgloss.Color
	Accent    lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Highlight lipgloss.Color
}

var palettes = map[domain.Theme]Palette{
	domain.ThemePrimary: {
		Primary:   lipgloss.Color("#1A237E"),
		Accent:    lipgloss.Color("#3949AB"),
		Surface:   lipgloss.Color("#1E1E3F"),
		Text:      lipgloss.Color("#FFFFFF"),
		Muted:     lipgloss.Color("#9FA8DA"),
		Highlight: lipgloss.Color("#283593"),
	},
	domain.ThemeDark: {
		Primary:   lipgloss.Color("#424242"),
		Accent:    lipgloss.Color("#BDBDBD"),
		Surface:   lipgloss.Color("#1C1C1C"),
		Text:      lipgloss.Color("#FFFFFF"),
		Muted:     lipgloss.Color("#757575"),
		Highlight: lipgloss.Color("#616161"),
	},
	domain.ThemeLight: {
		Primary:   lipgloss.Color("#616161"),
		Accent:    lipgloss.Color("#3949AB"),
		Surface:   lipgloss.Color("#F5F5F5"),
		Text:      lipgloss.Color("#000000"),
		Muted:     lipgloss.Color("#9E9E9E"),
		Highlight: lipgloss.Color("#E0E0E0"),
	},
}

// PaletteFor returns the palette of a theme, falling back to the default theme
func PaletteFor(theme domain.Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[domain.DefaultTheme]
}

var (
	// Category colors do not change with the theme
	CriticalRed  = lipgloss.Color("#D32F2F")
	OnHoldYellow = lipgloss.Color("#F57C00")
	SafeGreen    = lipgloss.Color("#388E3C")
	White        = lipgloss.Color("#FFFFFF")
	Black        = lipgloss.Color("#000000")

	// Current theme
	Current domain.Theme
	Colors  Palette

	// Base styles
	App           lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	MutedText     lipgloss.Style
	ColumnHeader  lipgloss.Style
	Column        lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	StatusBar     lipgloss.Style
	InputLabel    lipgloss.Style
	InputField    lipgloss.Style
	InputFocused  lipgloss.Style
	Counter       lipgloss.Style
	CounterFull   lipgloss.Style
	ToggleYes     lipgloss.Style
	ToggleNo      lipgloss.Style
	BlockTitle    lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
	Success       lipgloss.Style
	ErrorMsg      lipgloss.Style
)

func init() {
	Apply(domain.DefaultTheme)
}

// Apply rebuilds every style from the theme's palette
func Apply(theme domain.Theme) {
	Current = theme
	Colors = PaletteFor(theme)
	c := Colors

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(c.Text).
		Background(c.Primary).
		Padding(0, 1).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(c.Muted).
		Italic(true)

	MutedText = lipgloss.NewStyle().
		Foreground(c.Muted)

	ColumnHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(White).
		Padding(0, 1)

	Column = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Primary).
		Padding(0, 1)

	Card = lipgloss.NewStyle().
		Foreground(c.Text)

	CardSelected = lipgloss.NewStyle().
		Background(c.Highlight).
		Foreground(c.Text).
		Bold(true)

	StatusBar = lipgloss.NewStyle().
		Background(c.Surface).
		Foreground(c.Text).
		Padding(0, 1)

	InputLabel = lipgloss.NewStyle().
		Foreground(c.Accent).
		Bold(true)

	InputField = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Primary).
		Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Accent).
		Padding(0, 1)

	Counter = lipgloss.NewStyle().
		Foreground(c.Muted)

	CounterFull = lipgloss.NewStyle().
		Foreground(OnHoldYellow).
		Bold(true)

	ToggleYes = lipgloss.NewStyle().
		Foreground(SafeGreen).
		Bold(true)

	ToggleNo = lipgloss.NewStyle().
		Foreground(c.Muted)

	BlockTitle = lipgloss.NewStyle().
		Foreground(c.Accent).
		Underline(true)

	HelpKey = lipgloss.NewStyle().
		Foreground(c.Accent).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
		Foreground(c.Muted)

	HelpSeparator = lipgloss.NewStyle().
		Foreground(c.Muted).
		SetString(" • ")

	Success = lipgloss.NewStyle().
		Foreground(SafeGreen).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
		Foreground(CriticalRed).
		Bold(true)
}

// CategoryColor returns the board color of a category
func CategoryColor(cat domain.Category) lipgloss.Color {
	switch cat {
	case domain.CategoryCritical:
		return CriticalRed
	case domain.CategoryOnHold:
		return OnHoldYellow
	case domain.CategorySafe:
		return SafeGreen
	default:
		return Colors.Primary
	}
}

// CategoryHeader returns the column header style of a category
func CategoryHeader(cat domain.Category) lipgloss.Style {
	return ColumnHeader.Background(CategoryColor(cat))
}
