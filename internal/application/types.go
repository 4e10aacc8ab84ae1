package application

import "rapport/internal/domain"

// Re-export domain types for use by adapters
type (
	Contact        = domain.Contact
	Answers        = domain.Answers
	Category       = domain.Category
	Classification = domain.Classification
	Theme          = domain.Theme
)

const (
	CategoryCritical = domain.CategoryCritical
	CategoryOnHold   = domain.CategoryOnHold
	CategorySafe     = domain.CategorySafe
)

// ContactView pairs a contact with its derived classification
type ContactView struct {
	Contact
	Classification
}

// NewContactView classifies a contact for display
func NewContactView(c domain.Contact) ContactView {
	return ContactView{Contact: c, Classification: c.Classification()}
}

// ParseCategory parses a category name
func ParseCategory(s string) (Category, error) {
	return domain.ParseCategory(s)
}

// ParseTheme parses a theme name
func ParseTheme(s string) (Theme, error) {
	return domain.ParseTheme(s)
}
