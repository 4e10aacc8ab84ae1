package commands

import (
	"context"
	"sort"

	"golang.org/x/text/cases"

	"rapport/internal/application"
	"rapport/internal/ports"
)

// SearchResult is a contact matched by a query, with a relevance score
type SearchResult struct {
	application.ContactView
	Score int
}

// SearchCommand finds contacts by name or description with fuzzy matching
type SearchCommand struct {
	repo  ports.ContactRepository
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(repo ports.ContactRepository, query string) *SearchCommand {
	return &SearchCommand{
		repo:  repo,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if c.Query == "" {
		return nil, nil
	}

	var results []SearchResult
	for _, contact := range c.repo.List() {
		best := max(
			FuzzyScore(contact.FullName, c.Query),
			FuzzyScore(contact.Description, c.Query),
		)
		if best > 0 {
			results = append(results, SearchResult{
				ContactView: application.NewContactView(contact),
				Score:       best,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

// FuzzyScore calculates how well target matches query, ignoring case.
// Zero means no match.
func FuzzyScore(target, query string) int {
	fold := cases.Fold() // a Caser is stateful, so one per call
	t := []rune(fold.String(target))
	q := []rune(fold.String(query))

	if len(q) == 0 {
		return 0
	}

	if idx := runeIndex(t, q); idx >= 0 {
		score := 100
		if idx == 0 {
			score += 50
		}
		return score
	}

	// Fuzzy match: query runes appear in order
	score := 0
	qi := 0
	prev := -1
	for i := 0; i < len(t) && qi < len(q); i++ {
		if t[i] != q[qi] {
			continue
		}
		if prev == i-1 {
			score += 10 // consecutive
		}
		if i == 0 {
			score += 15
		}
		if i > 0 && (t[i-1] == ' ' || t[i-1] == '-' || t[i-1] == '.') {
			score += 10 // word start
		}
		score++
		prev = i
		qi++
	}

	if qi == len(q) {
		return score
	}
	return 0
}

func runeIndex(s, sub []rune) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		match := true
		for j := range sub {
			if s[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
