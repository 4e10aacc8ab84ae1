package commands

import (
	"context"
	"fmt"
	"os"

	"rapport/internal/application"
	"rapport/internal/ports"
)

// EditSnapshotResult contains the outcome of editing the collection in an editor
type EditSnapshotResult struct {
	Changed bool
	Count   int
	Message string
}

// EditSnapshotCommand exports the collection to a temp file, opens it in the
// editor, and imports the edited file. A rejected edit leaves the collection as it was.
type EditSnapshotCommand struct {
	repo   ports.ContactRepository
	editor ports.EditorOpener
}

// NewEditSnapshotCommand creates a new EditSnapshotCommand
func NewEditSnapshotCommand(repo ports.ContactRepository, editor ports.EditorOpener) *EditSnapshotCommand {
	return &EditSnapshotCommand{
		repo:   repo,
		editor: editor,
	}
}

// Execute runs the edit snapshot command
func (c *EditSnapshotCommand) Execute(ctx context.Context) (*EditSnapshotResult, error) {
	snapshot, err := c.repo.ExportSnapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to export: %w", err)
	}

	tmp, err := os.CreateTemp("", "rapport-*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(snapshot); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := c.editor.OpenFile(path); err != nil {
		return nil, fmt.Errorf("editor failed: %w", err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return nil, &application.ImportError{Source: path, Err: err}
	}
	if string(edited) == snapshot {
		return &EditSnapshotResult{Count: len(c.repo.List()), Message: "No changes"}, nil
	}

	if err := c.repo.ImportSnapshot(string(edited)); err != nil {
		return nil, &application.ImportError{Source: "edited snapshot", Err: err}
	}

	count := len(c.repo.List())
	return &EditSnapshotResult{
		Changed: true,
		Count:   count,
		Message: fmt.Sprintf("Saved %d contacts", count),
	}, nil
}
