package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"rapport/internal/application"
	"rapport/internal/domain"
	"rapport/internal/ports"
)

// newID assigns contact ids; replaced in tests
var newID = uuid.NewString

// CreateContactResult contains the result of creating a contact
type CreateContactResult struct {
	Contact        domain.Contact
	Classification domain.Classification
	Message        string
}

// CreateContactCommand adds a new contact with a fresh id
type CreateContactCommand struct {
	repo        ports.ContactRepository
	FullName    string
	Description string
	PhotoPath   string
	Answers     domain.Answers
}

// NewCreateContactCommand creates a new CreateContactCommand
func NewCreateContactCommand(repo ports.ContactRepository, fullName, description string) *CreateContactCommand {
	return &CreateContactCommand{
		repo:        repo,
		FullName:    fullName,
		Description: description,
	}
}

// Validate checks if the create operation is valid
func (c *CreateContactCommand) Validate() error {
	return application.ValidateRequired("fullName", c.FullName)
}

// Execute runs the create contact command
func (c *CreateContactCommand) Execute(ctx context.Context) (*CreateContactResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	contact := domain.Contact{
		ID:          newID(),
		FullName:    domain.NormalizeFullName(strings.TrimSpace(c.FullName)),
		Description: domain.Truncate(strings.TrimSpace(c.Description), domain.MaxFieldLength),
		Answers:     c.Answers,
	}
	if photo := strings.TrimSpace(c.PhotoPath); photo != "" {
		contact.PhotoPath = &photo
	}

	c.repo.Add(contact)

	cls := contact.Classification()
	return &CreateContactResult{
		Contact:        contact,
		Classification: cls,
		Message:        fmt.Sprintf("Created %s (%s, score %d)", contact.FullName, cls.Category, cls.Score),
	}, nil
}
