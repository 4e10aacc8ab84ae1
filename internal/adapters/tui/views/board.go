package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"

	"rapport/internal/adapters/tui/styles"
	"rapport/internal/application"
	"rapport/internal/application/commands"
	"rapport/internal/domain"
	"rapport/internal/ports"
)

// BoardKeyMap defines key bindings for the board view
type BoardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	New      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Photo    key.Binding
	Filter   key.Binding
	Transfer key.Binding
	Settings key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BoardKeys = BoardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev column"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next column"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e/enter", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Photo: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "photo"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Transfer: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export/import"),
	),
	Settings: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var filterKeys = struct {
	Apply key.Binding
	Clear key.Binding
}{
	Apply: key.NewBinding(key.WithKeys("enter")),
	Clear: key.NewBinding(key.WithKeys("esc")),
}

// cardHeight is the number of lines one card takes, including the gap
const cardHeight = 3

// BoardModel shows contacts in one column per category
type BoardModel struct {
	ViewState
	repo      ports.ContactRepository
	board     *commands.Board
	column    int
	scrollers []*Scroller

	filter    textinput.Model
	filtering bool
}

// NewBoardModel creates a new board model
func NewBoardModel(repo ports.ContactRepository) *BoardModel {
	filter := textinput.New()
	filter.Placeholder = "filter by name or description"
	filter.Prompt = "/ "
	filter.CharLimit = domain.MaxFieldLength

	scrollers := make([]*Scroller, len(domain.Categories))
	for i := range scrollers {
		scrollers[i] = NewScroller(5)
	}

	return &BoardModel{
		repo:      repo,
		filter:    filter,
		scrollers: scrollers,
	}
}

// Init loads the board
func (m *BoardModel) Init() tea.Cmd {
	return m.Reload()
}

type boardLoadedMsg struct {
	board *commands.Board
}

// Reload rebuilds the board from the store's in-memory collection
func (m *BoardModel) Reload() tea.Cmd {
	query := m.filter.Value()
	return func() tea.Msg {
		return boardLoadedMsg{board: commands.BuildBoard(filterContacts(m.repo.List(), query))}
	}
}

// filterContacts keeps contacts whose name or description contains query, ignoring case
func filterContacts(contacts []domain.Contact, query string) []domain.Contact {
	query = strings.TrimSpace(query)
	if query == "" {
		return contacts
	}
	fold := cases.Fold()
	q := fold.String(query)

	var out []domain.Contact
	for _, c := range contacts {
		if strings.Contains(fold.String(c.FullName), q) || strings.Contains(fold.String(c.Description), q) {
			out = append(out, c)
		}
	}
	return out
}

// Update handles messages for the board
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case boardLoadedMsg:
		m.setBoard(msg.board)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m, m.updateFilter(msg)
		}

		m.ClearMessage()

		switch {
		case key.Matches(msg, BoardKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BoardKeys.Up):
			m.scroller().Up()
		case key.Matches(msg, BoardKeys.Down):
			m.scroller().Down()
		case key.Matches(msg, BoardKeys.Left):
			m.column = (m.column + len(m.scrollers) - 1) % len(m.scrollers)
		case key.Matches(msg, BoardKeys.Right):
			m.column = (m.column + 1) % len(m.scrollers)

		case key.Matches(msg, BoardKeys.New):
			return m, func() tea.Msg { return SwitchToFormMsg{} }

		case key.Matches(msg, BoardKeys.Edit):
			if v, ok := m.Selected(); ok {
				c := v.Contact
				return m, func() tea.Msg { return SwitchToFormMsg{Contact: &c} }
			}

		case key.Matches(msg, BoardKeys.Delete):
			if v, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SwitchToDeleteMsg{Contact: v.Contact} }
			}

		case key.Matches(msg, BoardKeys.Photo):
			if v, ok := m.Selected(); ok {
				if !v.HasPhoto() {
					m.SetMessage(v.FullName+" has no photo", true)
					return m, nil
				}
				path := v.Photo()
				return m, func() tea.Msg { return OpenPhotoMsg{Path: path} }
			}

		case key.Matches(msg, BoardKeys.Filter):
			m.filtering = true
			return m, m.filter.Focus()

		case key.Matches(msg, BoardKeys.Transfer):
			return m, func() tea.Msg { return SwitchToTransferMsg{} }

		case key.Matches(msg, BoardKeys.Settings):
			return m, func() tea.Msg { return SwitchToSettingsMsg{} }

		case key.Matches(msg, BoardKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
		return m, nil
	}

	return m, nil
}

func (m *BoardModel) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, filterKeys.Apply):
		m.filtering = false
		m.filter.Blur()
		return m.Reload()
	case key.Matches(msg, filterKeys.Clear):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		return m.Reload()
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return tea.Batch(cmd, m.Reload())
}

func (m *BoardModel) setBoard(board *commands.Board) {
	m.board = board
	for i, col := range board.Columns {
		if i < len(m.scrollers) {
			m.scrollers[i].SetTotal(len(col.Contacts))
		}
	}
}

func (m *BoardModel) scroller() *Scroller {
	return m.scrollers[m.column]
}

// Filtering reports whether the filter input has focus
func (m *BoardModel) Filtering() bool {
	return m.filtering
}

// Selected returns the contact under the cursor
func (m *BoardModel) Selected() (application.ContactView, bool) {
	if m.board == nil || m.column >= len(m.board.Columns) {
		return application.ContactView{}, false
	}
	contacts := m.board.Columns[m.column].Contacts
	cursor := m.scroller().Cursor()
	if cursor < 0 || cursor >= len(contacts) {
		return application.ContactView{}, false
	}
	return contacts[cursor], true
}

// SetSize updates the view dimensions and the number of visible cards
func (m *BoardModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// title, column header, borders, status and help take about 12 lines
	window := max((height-12)/cardHeight, 1)
	for _, s := range m.scrollers {
		s.SetWindow(window)
	}
}

// View renders the board
func (m *BoardModel) View() string {
	if m.board == nil {
		return "Loading..."
	}

	vb := NewViewBuilder().
		Raw(RenderTitle("Rapport")).
		Raw("  ").
		Line(RenderSubtitle(fmt.Sprintf("%d contacts", m.board.Total())))

	if m.filtering || m.filter.Value() != "" {
		vb.Line(m.filter.View())
	}
	vb.BlankLine()

	colWidth := m.columnWidth()
	rendered := make([]string, 0, len(m.board.Columns))
	for i, col := range m.board.Columns {
		rendered = append(rendered, m.renderColumn(i, col, colWidth))
	}
	vb.Line(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))

	vb.BlankLine()
	vb.Message(m.Message, m.MessageErr)

	if m.filtering {
		vb.Muted("enter apply • esc clear")
	} else {
		vb.Help(BoardKeys.Left, BoardKeys.Down, BoardKeys.New, BoardKeys.Edit,
			BoardKeys.Delete, BoardKeys.Filter, BoardKeys.Transfer, BoardKeys.Help, BoardKeys.Quit)
	}

	return vb.String()
}

func (m *BoardModel) columnWidth() int {
	if m.Width <= 0 {
		return domain.MaxFieldLength / 2
	}
	// app padding and column borders
	return max((m.Width-6)/len(m.scrollers)-4, 12)
}

func (m *BoardModel) renderColumn(index int, col commands.BoardColumn, width int) string {
	var b strings.Builder

	header := fmt.Sprintf("%s (%d)", col.Category.Title(), len(col.Contacts))
	b.WriteString(styles.CategoryHeader(col.Category).Width(width).Render(domain.Truncate(header, width)))
	b.WriteString("\n\n")

	s := m.scrollers[index]
	if above := s.Above(); above > 0 {
		b.WriteString(RenderMuted(fmt.Sprintf("↑ %d more", above)))
		b.WriteString("\n")
	}

	if len(col.Contacts) == 0 {
		b.WriteString(RenderMuted("empty"))
		b.WriteString("\n")
	}

	start, end := s.Visible()
	for i := start; i < end; i++ {
		selected := index == m.column && i == s.Cursor()
		b.WriteString(RenderCard(col.Contacts[i], selected, width))
		b.WriteString("\n\n")
	}

	if below := s.Below(); below > 0 {
		b.WriteString(RenderMuted(fmt.Sprintf("↓ %d more", below)))
	}

	style := styles.Column.Width(width + 2)
	if index == m.column {
		style = style.BorderForeground(styles.CategoryColor(col.Category))
	}
	return style.Render(b.String())
}
