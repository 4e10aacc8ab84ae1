package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"rapport/internal/application"
	"rapport/internal/ports"
)

// ExportResult contains the exported snapshot and where it was delivered
type ExportResult struct {
	Snapshot string
	FilePath string // empty when no file was written
	Copied   bool
	CopyErr  error // clipboard failures do not fail the export
	Message  string
}

// ExportCommand serializes the collection and optionally writes it to a
// file and the clipboard. The primary store file is never touched.
type ExportCommand struct {
	repo      ports.ContactRepository
	clipboard ports.Clipboard
	FilePath  string
}

// NewExportCommand creates a new ExportCommand. clipboard may be nil.
func NewExportCommand(repo ports.ContactRepository, clipboard ports.Clipboard, filePath string) *ExportCommand {
	return &ExportCommand{
		repo:      repo,
		clipboard: clipboard,
		FilePath:  filePath,
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	snapshot, err := c.repo.ExportSnapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to export: %w", err)
	}

	result := &ExportResult{Snapshot: snapshot}

	if c.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(c.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create export directory: %w", err)
		}
		if err := os.WriteFile(c.FilePath, []byte(snapshot), 0644); err != nil {
			return nil, fmt.Errorf("failed to write export file: %w", err)
		}
		result.FilePath = c.FilePath
	}

	if c.clipboard != nil {
		if err := c.clipboard.WriteAll(snapshot); err != nil {
			result.CopyErr = err
		} else {
			result.Copied = true
		}
	}

	count := len(c.repo.List())
	switch {
	case result.FilePath != "" && result.Copied:
		result.Message = fmt.Sprintf("Exported %d contacts to %s and the clipboard", count, result.FilePath)
	case result.FilePath != "":
		result.Message = fmt.Sprintf("Exported %d contacts to %s", count, result.FilePath)
	case result.Copied:
		result.Message = fmt.Sprintf("Exported %d contacts to the clipboard", count)
	default:
		result.Message = fmt.Sprintf("Exported %d contacts", count)
	}
	return result, nil
}

// ImportResult contains the outcome of a successful import
type ImportResult struct {
	Count   int
	Message string
}

// ImportCommand replaces the whole collection with a snapshot.
// A rejected snapshot leaves the collection untouched.
type ImportCommand struct {
	repo ports.ContactRepository
	Data string
	Path string // read instead of Data when set
}

// NewImportCommand imports snapshot text
func NewImportCommand(repo ports.ContactRepository, data string) *ImportCommand {
	return &ImportCommand{
		repo: repo,
		Data: data,
	}
}

// NewImportFileCommand imports the snapshot stored at path
func NewImportFileCommand(repo ports.ContactRepository, path string) *ImportCommand {
	return &ImportCommand{
		repo: repo,
		Path: path,
	}
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context) (*ImportResult, error) {
	data := c.Data
	if c.Path != "" {
		raw, err := os.ReadFile(c.Path)
		if err != nil {
			return nil, &application.ImportError{Source: c.Path, Err: err}
		}
		data = string(raw)
	}

	if err := c.repo.ImportSnapshot(data); err != nil {
		return nil, &application.ImportError{Source: c.Path, Err: err}
	}

	count := len(c.repo.List())
	return &ImportResult{
		Count:   count,
		Message: fmt.Sprintf("Imported %d contacts", count),
	}, nil
}
