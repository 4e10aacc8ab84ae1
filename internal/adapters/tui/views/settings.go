package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rapport/internal/adapters/tui/styles"
	"rapport/internal/application/commands"
	"rapport/internal/domain"
	"rapport/internal/ports"
)

// SettingsKeyMap defines key bindings for the settings view
type SettingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

var SettingsKeys = SettingsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "apply"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// SettingsModel lets the user pick a theme
type SettingsModel struct {
	ViewState
	prefs  ports.PreferenceStore
	cursor int
}

// NewSettingsModel creates a new settings view
func NewSettingsModel(prefs ports.PreferenceStore) *SettingsModel {
	return &SettingsModel{prefs: prefs}
}

// Init initializes the settings view
func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

// Reset places the cursor on the active theme
func (m *SettingsModel) Reset() {
	m.ClearMessage()
	for i, t := range domain.Themes {
		if t == styles.Current {
			m.cursor = i
		}
	}
}

// Update handles messages for the settings view
func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SettingsKeys.Back):
			return m, func() tea.Msg { return SwitchToBoardMsg{} }
		case key.Matches(msg, SettingsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, SettingsKeys.Down):
			if m.cursor < len(domain.Themes)-1 {
				m.cursor++
			}
		case key.Matches(msg, SettingsKeys.Select):
			return m, m.apply(domain.Themes[m.cursor])
		}
	}
	return m, nil
}

func (m *SettingsModel) apply(theme domain.Theme) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewSetThemeCommand(m.prefs, theme.String()).Execute(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ThemeChangedMsg{Theme: result.Theme, Message: result.Message}
	}
}

// View renders the settings view
func (m *SettingsModel) View() string {
	vb := NewViewBuilder().
		Title("Settings").
		Line(styles.InputLabel.Render("Theme"))

	for i, t := range domain.Themes {
		marker := "  "
		if t == styles.Current {
			marker = "● "
		}
		line := marker + t.Label()
		if i == m.cursor {
			vb.Line(styles.CardSelected.Render(line))
		} else {
			vb.Line(styles.Card.Render(line))
		}
	}
	vb.BlankLine()
	vb.Message(m.Message, m.MessageErr)
	vb.Help(SettingsKeys.Up, SettingsKeys.Down, SettingsKeys.Select, SettingsKeys.Back)
	return vb.String()
}
