package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rapport/internal/adapters/tui/styles"
)

// InputField is a labelled text input. Fields with a character limit show an n/limit counter.
type InputField struct {
	Label string
	Input textinput.Model
}

// NewInputField creates a new input field with the given label and placeholder
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = charLimit
	return InputField{
		Label: label,
		Input: input,
	}
}

// InputForm holds the text fields of a form. FocusedField is -1 when focus
// is elsewhere, e.g. on the question toggles.
type InputForm struct {
	Fields       []InputField
	FocusedField int
}

// NewInputForm creates a form with the first field focused
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{Fields: fields, FocusedField: -1}
	form.SetFocus(0)
	return form
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards a message to the focused input
func (f *InputForm) Update(msg tea.Msg) tea.Cmd {
	if !f.focused() {
		return nil
	}
	var cmd tea.Cmd
	f.Fields[f.FocusedField].Input, cmd = f.Fields[f.FocusedField].Input.Update(msg)
	return cmd
}

func (f *InputForm) focused() bool {
	return f.FocusedField >= 0 && f.FocusedField < len(f.Fields)
}

// BlurAll removes focus from every field
func (f *InputForm) BlurAll() {
	for i := range f.Fields {
		f.Fields[i].Input.Blur()
	}
	f.FocusedField = -1
}

// SetFocus moves focus to a field; out of range indexes are ignored
func (f *InputForm) SetFocus(index int) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	f.BlurAll()
	f.FocusedField = index
	f.Fields[index].Input.Focus()
}

// Value returns the trimmed value of a field
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return strings.TrimSpace(f.Fields[index].Input.Value())
}

func (f *InputForm) SetValue(index int, value string) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	f.Fields[index].Input.SetValue(value)
}

// Reset clears every field and focuses the first
func (f *InputForm) Reset() {
	for i := range f.Fields {
		f.Fields[i].Input.SetValue("")
	}
	f.SetFocus(0)
}

// RenderField renders a field with its label and counter
func (f *InputForm) RenderField(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}

	field := f.Fields[index]
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(field.Label))
	if field.Input.CharLimit > 0 {
		b.WriteString(" ")
		b.WriteString(RenderCounter(field.Input.Value()))
	}
	b.WriteString("\n")

	style := styles.InputField
	if index == f.FocusedField {
		style = styles.InputFocused
	}
	b.WriteString(style.Render(field.Input.View()))
	return b.String()
}
