package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rapport/internal/adapters/tui/styles"
	"rapport/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBoardMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Rapport Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Sort your contacts by how the relationship serves you"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Board"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move within a column"))
	b.WriteString(helpLine("h / l / ← / →", "Switch column"))
	b.WriteString(helpLine("/", "Filter by name or description"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("n", "New contact"))
	b.WriteString(helpLine("e / Enter", "Edit contact and answers"))
	b.WriteString(helpLine("d", "Delete contact"))
	b.WriteString(helpLine("p", "Open photo"))
	b.WriteString(helpLine("x", "Export / import"))
	b.WriteString(helpLine("t", "Theme"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Scoring"))
	b.WriteString("\n")
	for _, block := range domain.Blocks {
		b.WriteString(styles.MutedText.Render("  " + block.Title()))
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedText.Render("  Each yes in blocks 1-3 adds 1. Any red flag subtracts 10."))
	b.WriteString("\n")
	for _, cat := range domain.Categories {
		b.WriteString("  ")
		b.WriteString(styles.CategoryHeader(cat).Render(cat.Title()))
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render(categoryRule(cat)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func categoryRule(cat domain.Category) string {
	switch cat {
	case domain.CategoryCritical:
		return "red flag or score below 3"
	case domain.CategoryOnHold:
		return "score 3 to 6"
	default:
		return "score 7 or more"
	}
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
