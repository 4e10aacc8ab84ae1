package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"rapport/internal/adapters/tui/styles"
	"rapport/internal/adapters/tui/views"
	"rapport/internal/application/commands"
	"rapport/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewForm
	ViewDelete
	ViewTransfer
	ViewSettings
	ViewHelp
)

// Options carries the optional collaborators of the TUI
type Options struct {
	Editor     ports.EditorOpener // nil disables editing the snapshot in an editor
	Photos     ports.PhotoOpener  // nil disables opening photos
	Clipboard  ports.Clipboard    // nil disables copying exports
	ExportPath string
	Changes    <-chan struct{} // signals that the contacts file changed on disk
	Logger     *zap.Logger
}

// App is the main TUI application model
type App struct {
	repo  ports.ContactRepository
	prefs ports.PreferenceStore
	opts  Options
	log   *zap.Logger

	state    ViewState
	board    *views.BoardModel
	form     *views.FormModel
	delete   *views.DeleteModel
	transfer *views.TransferModel
	settings *views.SettingsModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application and applies the stored theme
func NewApp(repo ports.ContactRepository, prefs ports.PreferenceStore, opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if prefs != nil {
		styles.Apply(prefs.Theme())
	}

	return &App{
		repo:     repo,
		prefs:    prefs,
		opts:     opts,
		log:      log.With(zap.String("component", "tui")),
		state:    ViewBoard,
		board:    views.NewBoardModel(repo),
		form:     views.NewFormModel(repo),
		delete:   views.NewDeleteModel(repo),
		transfer: views.NewTransferModel(repo, opts.Clipboard, opts.ExportPath, opts.Editor != nil),
		settings: views.NewSettingsModel(prefs),
		help:     views.NewHelpModel(),
	}
}

// WarnLoad shows a board warning when an unreadable file left the collection empty
func (a *App) WarnLoad(result ports.LoadResult) {
	if !result.Empty() || result.Err == nil {
		return
	}
	a.board.SetMessage(fmt.Sprintf("%s is unreadable, showing no contacts", a.repo.Path()), true)
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.board.Init(), a.waitForChange())
}

type fileChangedMsg struct{}

// waitForChange blocks until the watcher reports a change to the contacts file
func (a *App) waitForChange() tea.Cmd {
	if a.opts.Changes == nil {
		return nil
	}
	changes := a.opts.Changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.board.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.settings.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		_, cmd := a.transfer.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case fileChangedMsg:
		result := a.repo.Load()
		a.log.Info("contacts file changed on disk", zap.Stringer("outcome", result.Outcome), zap.Int("count", result.Count))
		a.WarnLoad(result)
		return a, tea.Batch(a.board.Reload(), a.waitForChange())

	// View switching messages
	case views.SwitchToBoardMsg:
		a.state = ViewBoard
		return a, a.board.Reload()

	case views.SwitchToFormMsg:
		a.state = ViewForm
		a.form.Load(msg.Contact)
		return a, a.form.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.delete.SetTarget(msg.Contact)
		return a, nil

	case views.SwitchToTransferMsg:
		a.state = ViewTransfer
		a.transfer.Reset()
		return a, nil

	case views.SwitchToSettingsMsg:
		if a.prefs == nil {
			a.board.SetMessage("Preferences are unavailable", true)
			return a, nil
		}
		a.state = ViewSettings
		a.settings.Reset()
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	// Outcome messages
	case views.ContactSavedMsg:
		return a, a.backToBoard(msg.Message)

	case views.ContactDeletedMsg:
		return a, a.backToBoard(msg.Message)

	case views.CollectionReplacedMsg:
		return a, a.backToBoard(msg.Message)

	case views.ThemeChangedMsg:
		styles.Apply(msg.Theme)
		a.settings.SetMessage(msg.Message, false)
		return a, nil

	case views.OpenPhotoMsg:
		a.openPhoto(msg.Path)
		return a, nil

	case views.EditSnapshotMsg:
		return a, a.editSnapshot()

	case snapshotEditedMsg:
		return a, a.importEdited(msg)

	case views.ErrMsg:
		a.log.Warn("operation failed", zap.Error(msg.Err))
		a.setMessage(msg.Err.Error(), true)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBoard:
		_, cmd = a.board.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewTransfer:
		_, cmd = a.transfer.Update(msg)
	case ViewSettings:
		_, cmd = a.settings.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) backToBoard(message string) tea.Cmd {
	a.state = ViewBoard
	a.board.SetMessage(message, false)
	return a.board.Reload()
}

// setMessage shows a message on the current view
func (a *App) setMessage(message string, isErr bool) {
	switch a.state {
	case ViewForm:
		a.form.SetMessage(message, isErr)
	case ViewDelete:
		a.state = ViewBoard
		a.board.SetMessage(message, isErr)
	case ViewTransfer:
		a.transfer.SetMessage(message, isErr)
	case ViewSettings:
		a.settings.SetMessage(message, isErr)
	default:
		a.board.SetMessage(message, isErr)
	}
}

func (a *App) openPhoto(path string) {
	if a.opts.Photos == nil {
		a.board.SetMessage("Opening photos is not supported here", true)
		return
	}
	if err := a.opts.Photos.Open(path); err != nil {
		a.log.Warn("failed to open photo", zap.String("path", path), zap.Error(err))
		a.board.SetMessage(err.Error(), true)
		return
	}
	a.board.SetMessage("Opened "+path, false)
}

type snapshotEditedMsg struct {
	path     string
	original string
	err      error
}

// editSnapshot writes the collection to a temp file and hands the terminal to the editor
func (a *App) editSnapshot() tea.Cmd {
	if a.opts.Editor == nil {
		return nil
	}

	snapshot, err := a.repo.ExportSnapshot()
	if err != nil {
		return func() tea.Msg { return views.ErrMsg{Err: err} }
	}

	tmp, err := os.CreateTemp("", "rapport-*.json")
	if err != nil {
		return func() tea.Msg { return views.ErrMsg{Err: fmt.Errorf("failed to create temp file: %w", err)} }
	}
	path := tmp.Name()
	_, werr := tmp.WriteString(snapshot)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(path)
		return func() tea.Msg { return views.ErrMsg{Err: fmt.Errorf("failed to write temp file %s", path)} }
	}

	cmd, err := a.opts.Editor.Command(path)
	if err != nil {
		os.Remove(path)
		return func() tea.Msg { return views.ErrMsg{Err: err} }
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return snapshotEditedMsg{path: path, original: snapshot, err: err}
	})
}

// importEdited imports the edited temp file unless the editor failed or nothing changed
func (a *App) importEdited(msg snapshotEditedMsg) tea.Cmd {
	defer os.Remove(msg.path)

	if msg.err != nil {
		a.transfer.SetMessage("Editor failed: "+msg.err.Error(), true)
		return nil
	}

	edited, err := os.ReadFile(msg.path)
	if err != nil {
		a.transfer.SetMessage(err.Error(), true)
		return nil
	}
	if string(edited) == msg.original {
		a.transfer.SetMessage("No changes", false)
		return nil
	}

	result, err := commands.NewImportCommand(a.repo, string(edited)).Execute(context.Background())
	if err != nil {
		a.transfer.SetMessage(err.Error(), true)
		return nil
	}
	return a.backToBoard(result.Message)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewForm:
		return a.form.View()
	case ViewDelete:
		return a.delete.View()
	case ViewTransfer:
		return a.transfer.View()
	case ViewSettings:
		return a.settings.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.board.View()
	}
}
