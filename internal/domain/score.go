package domain

import (
	"fmt"
	"strings"
)

const (
	RedFlagPenalty    = 10
	CriticalThreshold = 3 // scores below this are critical
	SafeThreshold     = 7 // scores at or above this are safe
)

// Category is the triage bucket a contact is shown under
type Category int

const (
	CategoryCritical Category = iota
	CategoryOnHold
	CategorySafe
)

// Categories lists the board columns in display order
var Categories = []Category{CategoryCritical, CategoryOnHold, CategorySafe}

func (c Category) String() string {
	switch c {
	case CategoryCritical:
		return "CRITICAL"
	case CategoryOnHold:
		return "ON_HOLD"
	case CategorySafe:
		return "SAFE"
	default:
		return "UNKNOWN"
	}
}

// Title returns the board column heading
func (c Category) Title() string {
	switch c {
	case CategoryCritical:
		return "Critical / cut off"
	case CategoryOnHold:
		return "On hold"
	case CategorySafe:
		return "Safe to engage"
	default:
		return "Unknown"
	}
}

// ParseCategory accepts a category name in any case, with '-' or '_' as separator
func ParseCategory(s string) (Category, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for _, c := range Categories {
		if c.String() == norm {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category: %q (expected CRITICAL, ON_HOLD, or SAFE)", s)
}

// Classification is the derived view of an answer vector
type Classification struct {
	Score       int
	HasRedFlags bool
	Category    Category
}

// Classify scores an answer vector and assigns its category.
// The result is never stored; it is recomputed from the answers on every call.
func Classify(a Answers) Classification {
	hasRedFlags := a.BlockScore(BlockRedFlags) > 0

	score := a.BlockScore(BlockResources) +
		a.BlockScore(BlockReciprocity) +
		a.BlockScore(BlockConditionalSupport)
	if hasRedFlags {
		score -= RedFlagPenalty
	}

	return Classification{
		Score:       score,
		HasRedFlags: hasRedFlags,
		Category:    categorize(score, hasRedFlags),
	}
}

// categorize keeps the red-flag test separate from the threshold test:
// the penalty only implies score < 3 while block sizes and weights stay as they are.
func categorize(score int, hasRedFlags bool) Category {
	if hasRedFlags || score < CriticalThreshold {
		return CategoryCritical
	}
	if score >= SafeThreshold {
		return CategorySafe
	}
	return CategoryOnHold
}
