package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"rapport/internal/application/commands"
	"rapport/internal/ports"
)

// TransferKeyMap defines key bindings for the export/import view
type TransferKeyMap struct {
	Export     key.Binding
	Paste      key.Binding
	FromFile   key.Binding
	EditorEdit key.Binding
	Submit     key.Binding
	Back       key.Binding
}

var TransferKeys = TransferKeyMap{
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Paste: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "import pasted JSON"),
	),
	FromFile: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "import export file"),
	),
	EditorEdit: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "edit in $EDITOR"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "import"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// TransferModel exports the collection and imports snapshots
type TransferModel struct {
	ViewState
	repo       ports.ContactRepository
	clipboard  ports.Clipboard
	exportPath string
	hasEditor  bool

	input     textarea.Model
	importing bool
}

// NewTransferModel creates a new export/import view. clipboard may be nil.
func NewTransferModel(repo ports.ContactRepository, clipboard ports.Clipboard, exportPath string, hasEditor bool) *TransferModel {
	input := textarea.New()
	input.Placeholder = `[{"id": "...", "fullName": "...", ...}]`
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetHeight(12)

	return &TransferModel{
		repo:       repo,
		clipboard:  clipboard,
		exportPath: exportPath,
		hasEditor:  hasEditor,
		input:      input,
	}
}

// Init initializes the transfer view
func (m *TransferModel) Init() tea.Cmd {
	return nil
}

// Reset returns to the menu with an empty paste area
func (m *TransferModel) Reset() {
	m.ClearMessage()
	m.importing = false
	m.input.Reset()
	m.input.Blur()
}

// Importing reports whether the paste area is open
func (m *TransferModel) Importing() bool {
	return m.importing
}

type exportDoneMsg struct {
	result *commands.ExportResult
}

// Update handles messages for the transfer view
func (m *TransferModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.input.SetWidth(max(msg.Width-8, 20))
		return m, nil

	case exportDoneMsg:
		m.SetMessage(msg.result.Message, false)
		if msg.result.CopyErr != nil {
			m.SetMessage(msg.result.Message+" (clipboard: "+msg.result.CopyErr.Error()+")", true)
		}
		return m, nil

	case tea.KeyMsg:
		if m.importing {
			return m, m.updateImport(msg)
		}

		m.ClearMessage()
		switch {
		case key.Matches(msg, TransferKeys.Back):
			return m, func() tea.Msg { return SwitchToBoardMsg{} }

		case key.Matches(msg, TransferKeys.Export):
			return m, m.export()

		case key.Matches(msg, TransferKeys.Paste):
			m.importing = true
			return m, m.input.Focus()

		case key.Matches(msg, TransferKeys.FromFile):
			return m, m.importFile()

		case key.Matches(msg, TransferKeys.EditorEdit):
			if m.hasEditor {
				return m, func() tea.Msg { return EditSnapshotMsg{} }
			}
		}
		return m, nil
	}

	return m, nil
}

func (m *TransferModel) updateImport(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, TransferKeys.Back):
		m.importing = false
		m.input.Blur()
		return nil
	case key.Matches(msg, TransferKeys.Submit):
		return m.importPasted(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *TransferModel) export() tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewExportCommand(m.repo, m.clipboard, m.exportPath).Execute(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return exportDoneMsg{result: result}
	}
}

func (m *TransferModel) importPasted(data string) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewImportCommand(m.repo, data).Execute(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return CollectionReplacedMsg{Message: result.Message}
	}
}

func (m *TransferModel) importFile() tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewImportFileCommand(m.repo, m.exportPath).Execute(context.Background())
		if err != nil {
			return ErrMsg{Err: err}
		}
		return CollectionReplacedMsg{Message: result.Message}
	}
}

// View renders the transfer view
func (m *TransferModel) View() string {
	vb := NewViewBuilder().
		Title("Export / Import").
		Subtitle("Import replaces every contact. A malformed snapshot changes nothing.")

	if m.importing {
		vb.Line(RenderLabelValue("Paste snapshot", ""))
		vb.Line(m.input.View())
		vb.BlankLine()
		vb.Message(m.Message, m.MessageErr)
		vb.Help(TransferKeys.Submit, TransferKeys.Back)
		return vb.String()
	}

	vb.Line(RenderLabelValue("Export file", m.exportPath))
	vb.BlankLine()
	vb.Message(m.Message, m.MessageErr)

	bindings := []key.Binding{TransferKeys.Export, TransferKeys.Paste, TransferKeys.FromFile}
	if m.hasEditor {
		bindings = append(bindings, TransferKeys.EditorEdit)
	}
	bindings = append(bindings, TransferKeys.Back)
	vb.Help(bindings...)
	return vb.String()
}
