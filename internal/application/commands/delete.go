package commands

import (
	"context"
	"fmt"

	"rapport/internal/application"
	"rapport/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID string
	Removed   int
	Message   string
}

// DeleteCommand deletes a contact by ID
type DeleteCommand struct {
	repo ports.ContactRepository
	ID   string
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(repo ports.ContactRepository, id string) *DeleteCommand {
	return &DeleteCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	return application.ValidateRequired("id", c.ID)
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	contact, ok := c.repo.Find(c.ID)
	if !ok {
		return nil, &application.NotFoundError{ID: c.ID}
	}

	removed := c.repo.Remove(c.ID)

	return &DeleteResult{
		DeletedID: c.ID,
		Removed:   removed,
		Message:   fmt.Sprintf("Deleted %s", contact.FullName),
	}, nil
}
