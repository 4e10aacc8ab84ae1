package commands

import (
	"context"
	"fmt"

	"rapport/internal/application"
	"rapport/internal/domain"
	"rapport/internal/ports"
)

// AnswerResult contains the contact after answering one question
type AnswerResult struct {
	Contact        domain.Contact
	Previous       domain.Classification
	Classification domain.Classification
	Message        string
}

// Moved reports whether the answer moved the contact to another board column
func (r *AnswerResult) Moved() bool {
	return r.Previous.Category != r.Classification.Category
}

// AnswerCommand sets the answer to a single survey question
type AnswerCommand struct {
	repo     ports.ContactRepository
	ID       string
	Question int // 1-based
	Value    bool
}

// NewAnswerCommand creates a new AnswerCommand
func NewAnswerCommand(repo ports.ContactRepository, id string, question int, value bool) *AnswerCommand {
	return &AnswerCommand{
		repo:     repo,
		ID:       id,
		Question: question,
		Value:    value,
	}
}

// Validate checks if the answer operation is valid
func (c *AnswerCommand) Validate() error {
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return err
	}
	_, err := application.ValidateQuestion(c.Question)
	return err
}

// Execute runs the answer command
func (c *AnswerCommand) Execute(ctx context.Context) (*AnswerResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	index, _ := application.ValidateQuestion(c.Question)

	contact, ok := c.repo.Find(c.ID)
	if !ok {
		return nil, &application.NotFoundError{ID: c.ID}
	}

	previous := contact.Classification()
	contact.Answers[index] = c.Value
	if !c.repo.Update(contact) {
		return nil, &application.NotFoundError{ID: c.ID}
	}

	result := &AnswerResult{
		Contact:        contact,
		Previous:       previous,
		Classification: contact.Classification(),
	}
	result.Message = fmt.Sprintf("Q%d = %s for %s: score %d, %s",
		c.Question, yesNo(c.Value), contact.FullName,
		result.Classification.Score, result.Classification.Category)
	if result.Moved() {
		result.Message += fmt.Sprintf(" (was %s)", previous.Category)
	}
	return result, nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
