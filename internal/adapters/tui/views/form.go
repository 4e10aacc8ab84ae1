package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rapport/internal/adapters/tui/styles"
	"rapport/internal/application/commands"
	"rapport/internal/domain"
	"rapport/internal/ports"
)

// FormKeyMap defines key bindings for the contact form
type FormKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Yes    key.Binding
	No     key.Binding
	Save   key.Binding
	Delete key.Binding
	Cancel key.Binding
}

var FormKeys = FormKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab/↓", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab/↑", "prev"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "no"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Delete: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "delete"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

const (
	fieldName = iota
	fieldDescription
	fieldPhoto
	fieldCount
)

// FormModel creates or edits a contact: three text fields and the twelve answers
type FormModel struct {
	ViewState
	repo    ports.ContactRepository
	form    *InputForm
	answers domain.Answers
	editing *domain.Contact
	focus   int // 0..2 text fields, then one per question
}

// NewFormModel creates a new contact form
func NewFormModel(repo ports.ContactRepository) *FormModel {
	name := NewInputField("Full name", "Jane Doe", domain.MaxFieldLength)
	desc := NewInputField("Description", "How you know them", domain.MaxFieldLength)
	photo := NewInputField("Photo", "/path/to/photo.jpg", 0)

	return &FormModel{
		repo: repo,
		form: NewInputForm(name, desc, photo),
	}
}

// Init initializes the form view
func (m *FormModel) Init() tea.Cmd {
	return m.form.Init()
}

// Load prepares the form for a new contact (nil) or for editing an existing one
func (m *FormModel) Load(contact *domain.Contact) {
	m.ClearMessage()
	m.form.Reset()
	m.answers = domain.Answers{}
	m.editing = nil
	m.focus = fieldName

	if contact != nil {
		c := *contact
		m.editing = &c
		m.form.SetValue(fieldName, c.FullName)
		m.form.SetValue(fieldDescription, c.Description)
		m.form.SetValue(fieldPhoto, c.Photo())
		m.answers = c.Answers
	}
}

// Editing reports whether the form edits an existing contact
func (m *FormModel) Editing() bool {
	return m.editing != nil
}

// Answers returns the answers currently entered
func (m *FormModel) Answers() domain.Answers {
	return m.answers
}

// Update handles messages for the form view
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, FormKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBoardMsg{} }

		case key.Matches(msg, FormKeys.Save):
			return m, m.save()

		case key.Matches(msg, FormKeys.Delete):
			if m.editing != nil {
				c := *m.editing
				return m, func() tea.Msg { return SwitchToDeleteMsg{Contact: c} }
			}
			return m, nil

		case key.Matches(msg, FormKeys.Next):
			m.moveFocus(1)
			return m, nil

		case key.Matches(msg, FormKeys.Prev):
			m.moveFocus(-1)
			return m, nil
		}

		if q, ok := m.focusedQuestion(); ok {
			switch {
			case key.Matches(msg, FormKeys.Toggle):
				m.answers[q] = !m.answers[q]
			case key.Matches(msg, FormKeys.Yes):
				m.answers[q] = true
				m.moveFocus(1)
			case key.Matches(msg, FormKeys.No):
				m.answers[q] = false
				m.moveFocus(1)
			}
			return m, nil
		}

		// enter in a text field moves on instead of submitting
		if msg.Type == tea.KeyEnter {
			m.moveFocus(1)
			return m, nil
		}
	}

	cmd := m.form.Update(msg)
	return m, cmd
}

func (m *FormModel) moveFocus(delta int) {
	total := fieldCount + domain.QuestionCount
	m.focus = (m.focus + delta + total) % total
	if m.focus < fieldCount {
		m.form.SetFocus(m.focus)
	} else {
		m.form.BlurAll()
	}
}

func (m *FormModel) focusedQuestion() (int, bool) {
	if m.focus < fieldCount {
		return 0, false
	}
	return m.focus - fieldCount, true
}

func (m *FormModel) save() tea.Cmd {
	name := m.form.Value(fieldName)
	desc := m.form.Value(fieldDescription)
	photo := m.form.Value(fieldPhoto)
	answers := m.answers
	editing := m.editing

	return func() tea.Msg {
		ctx := context.Background()

		if editing == nil {
			cmd := commands.NewCreateContactCommand(m.repo, name, desc)
			cmd.PhotoPath = photo
			cmd.Answers = answers
			result, err := cmd.Execute(ctx)
			if err != nil {
				return ErrMsg{Err: err}
			}
			return ContactSavedMsg{Message: result.Message}
		}

		cmd := commands.NewUpdateContactCommand(m.repo, editing.ID)
		cmd.FullName = &name
		cmd.Description = &desc
		cmd.PhotoPath = &photo
		cmd.Answers = &answers
		result, err := cmd.Execute(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ContactSavedMsg{Message: result.Message}
	}
}

// View renders the form view
func (m *FormModel) View() string {
	title := "New Contact"
	if m.editing != nil {
		title = "Edit Contact"
	}

	cls := domain.Classify(m.answers)

	vb := NewViewBuilder().Title(title)

	for i := 0; i < fieldCount; i++ {
		vb.Line(m.form.RenderField(i))
	}
	vb.BlankLine()

	for _, block := range domain.Blocks {
		vb.Line(styles.BlockTitle.Render(block.Title()))
		for i := block.Start(); i < block.Start()+domain.BlockSize; i++ {
			vb.Line(m.renderQuestion(i))
		}
	}
	vb.BlankLine()

	preview := fmt.Sprintf("Score %d  ", cls.Score)
	vb.Line(preview + styles.CategoryHeader(cls.Category).Render(cls.Category.Title()))
	vb.BlankLine()

	vb.Message(m.Message, m.MessageErr)

	bindings := []key.Binding{FormKeys.Next, FormKeys.Toggle, FormKeys.Save}
	if m.editing != nil {
		bindings = append(bindings, FormKeys.Delete)
	}
	bindings = append(bindings, FormKeys.Cancel)
	vb.Help(bindings...)

	return vb.String()
}

func (m *FormModel) renderQuestion(index int) string {
	cursor := "  "
	if q, ok := m.focusedQuestion(); ok && q == index {
		cursor = styles.HelpKey.Render("> ")
	}
	text := fmt.Sprintf("%2d. %s", index+1, domain.Questions[index])
	return strings.Join([]string{cursor, RenderToggle(m.answers[index]), " ", text}, "")
}
