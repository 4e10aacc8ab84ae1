package commands

import (
	"context"
	"fmt"
	"strings"

	"rapport/internal/application"
	"rapport/internal/domain"
	"rapport/internal/ports"
)

// UpdateContactResult contains the result of updating a contact
type UpdateContactResult struct {
	Contact        domain.Contact
	Classification domain.Classification
	Message        string
}

// UpdateContactCommand changes the editable fields of an existing contact.
// Nil fields are left as they are.
type UpdateContactCommand struct {
	repo        ports.ContactRepository
	ID          string
	FullName    *string
	Description *string
	PhotoPath   *string // empty string clears the photo
	Answers     *domain.Answers
}

// NewUpdateContactCommand creates a new UpdateContactCommand
func NewUpdateContactCommand(repo ports.ContactRepository, id string) *UpdateContactCommand {
	return &UpdateContactCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the update operation is valid
func (c *UpdateContactCommand) Validate() error {
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return err
	}
	if c.FullName != nil {
		if err := application.ValidateRequired("fullName", *c.FullName); err != nil {
			return err
		}
	}
	if c.FullName == nil && c.Description == nil && c.PhotoPath == nil && c.Answers == nil {
		return fmt.Errorf("update %s: %w", c.ID, application.ErrNothingChanged)
	}
	return nil
}

// Execute runs the update contact command
func (c *UpdateContactCommand) Execute(ctx context.Context) (*UpdateContactResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	contact, ok := c.repo.Find(c.ID)
	if !ok {
		return nil, &application.NotFoundError{ID: c.ID}
	}

	if c.FullName != nil {
		contact.FullName = domain.NormalizeFullName(strings.TrimSpace(*c.FullName))
	}
	if c.Description != nil {
		contact.Description = domain.Truncate(strings.TrimSpace(*c.Description), domain.MaxFieldLength)
	}
	if c.PhotoPath != nil {
		if photo := strings.TrimSpace(*c.PhotoPath); photo != "" {
			contact.PhotoPath = &photo
		} else {
			contact.PhotoPath = nil
		}
	}
	if c.Answers != nil {
		contact.Answers = *c.Answers
	}

	if !c.repo.Update(contact) {
		return nil, &application.NotFoundError{ID: c.ID}
	}

	cls := contact.Classification()
	return &UpdateContactResult{
		Contact:        contact,
		Classification: cls,
		Message:        fmt.Sprintf("Updated %s (%s, score %d)", contact.FullName, cls.Category, cls.Score),
	}, nil
}
