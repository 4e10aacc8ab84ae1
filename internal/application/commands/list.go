package commands

import (
	"context"

	"rapport/internal/application"
	"rapport/internal/domain"
	"rapport/internal/ports"
)

// ListContactsCommand lists contacts in stored order, optionally limited to one category
type ListContactsCommand struct {
	repo     ports.ContactRepository
	Category *domain.Category
}

// NewListContactsCommand creates a new ListContactsCommand
func NewListContactsCommand(repo ports.ContactRepository) *ListContactsCommand {
	return &ListContactsCommand{repo: repo}
}

// Execute runs the list contacts command
func (c *ListContactsCommand) Execute(ctx context.Context) ([]application.ContactView, error) {
	contacts := c.repo.List()
	views := make([]application.ContactView, 0, len(contacts))
	for _, contact := range contacts {
		v := application.NewContactView(contact)
		if c.Category != nil && v.Category != *c.Category {
			continue
		}
		views = append(views, v)
	}
	return views, nil
}

// GetContactCommand looks up a single contact
type GetContactCommand struct {
	repo ports.ContactRepository
	ID   string
}

// NewGetContactCommand creates a new GetContactCommand
func NewGetContactCommand(repo ports.ContactRepository, id string) *GetContactCommand {
	return &GetContactCommand{
		repo: repo,
		ID:   id,
	}
}

// Execute runs the get contact command
func (c *GetContactCommand) Execute(ctx context.Context) (*application.ContactView, error) {
	if err := application.ValidateRequired("id", c.ID); err != nil {
		return nil, err
	}
	contact, ok := c.repo.Find(c.ID)
	if !ok {
		return nil, &application.NotFoundError{ID: c.ID}
	}
	v := application.NewContactView(contact)
	return &v, nil
}

// BoardColumn holds the contacts placed under one category
type BoardColumn struct {
	Category domain.Category
	Contacts []application.ContactView
}

// Board is the triage board: one column per category in display order
type Board struct {
	Columns []BoardColumn
}

// Total returns the number of contacts on the board
func (b *Board) Total() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Contacts)
	}
	return n
}

// Column returns the column for a category
func (b *Board) Column(cat domain.Category) BoardColumn {
	for _, col := range b.Columns {
		if col.Category == cat {
			return col
		}
	}
	return BoardColumn{Category: cat}
}

// BoardCommand groups the collection into board columns.
// Within a column contacts keep their stored order.
type BoardCommand struct {
	repo ports.ContactRepository
}

// NewBoardCommand creates a new BoardCommand
func NewBoardCommand(repo ports.ContactRepository) *BoardCommand {
	return &BoardCommand{repo: repo}
}

// Execute runs the board command
func (c *BoardCommand) Execute(ctx context.Context) (*Board, error) {
	return BuildBoard(c.repo.List()), nil
}

// BuildBoard classifies contacts into columns
func BuildBoard(contacts []domain.Contact) *Board {
	board := &Board{Columns: make([]BoardColumn, len(domain.Categories))}
	index := make(map[domain.Category]int, len(domain.Categories))
	for i, cat := range domain.Categories {
		board.Columns[i] = BoardColumn{Category: cat}
		index[cat] = i
	}

	for _, contact := range contacts {
		v := application.NewContactView(contact)
		i := index[v.Category]
		board.Columns[i].Contacts = append(board.Columns[i].Contacts, v)
	}
	return board
}
