package domain

import (
	"encoding/json"
	"fmt"
)

const (
	QuestionCount  = 12
	BlockSize      = 3
	MaxFieldLength = 50
)

// Contact is one tracked relationship
type Contact struct {
	ID          string  `json:"id"`
	PhotoPath   *string `json:"photoPath"`
	FullName    string  `json:"fullName"`
	Description string  `json:"description"`
	Answers     Answers `json:"answers"`
}

// Classification returns the score and category derived from the contact's answers
func (c Contact) Classification() Classification {
	return Classify(c.Answers)
}

// HasPhoto reports whether a photo reference is set
func (c Contact) HasPhoto() bool {
	return c.PhotoPath != nil && *c.PhotoPath != ""
}

// Photo returns the photo reference or an empty string
func (c Contact) Photo() string {
	if c.PhotoPath == nil {
		return ""
	}
	return *c.PhotoPath
}

// NormalizedFullName returns the name truncated to MaxFieldLength characters
func (c Contact) NormalizedFullName() string {
	return NormalizeFullName(c.FullName)
}

// NormalizedDescription returns the description truncated and padded to exactly MaxFieldLength characters
func (c Contact) NormalizedDescription() string {
	return NormalizeDescription(c.Description)
}

// Answers is the positional survey answer vector. Index i holds question i+1.
type Answers [QuestionCount]bool

// UnmarshalJSON accepts only an array of exactly QuestionCount booleans
func (a *Answers) UnmarshalJSON(data []byte) error {
	var values []*bool
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if values == nil {
		return fmt.Errorf("answers must be an array, got null")
	}
	if len(values) != QuestionCount {
		return fmt.Errorf("answers must have exactly %d entries, got %d", QuestionCount, len(values))
	}
	var out Answers
	for i, v := range values {
		if v == nil {
			return fmt.Errorf("answer %d is null", i)
		}
		out[i] = *v
	}
	*a = out
	return nil
}

// Block returns the three answers belonging to a survey block
func (a Answers) Block(b Block) [BlockSize]bool {
	var out [BlockSize]bool
	start := int(b) * BlockSize
	copy(out[:], a[start:start+BlockSize])
	return out
}

// BlockScore counts the true answers in a block
func (a Answers) BlockScore(b Block) int {
	n := 0
	for _, v := range a.Block(b) {
		if v {
			n++
		}
	}
	return n
}

// Count returns the number of true answers across all blocks
func (a Answers) Count() int {
	n := 0
	for _, v := range a {
		if v {
			n++
		}
	}
	return n
}

// Block identifies one of the four survey themes
type Block int

const (
	BlockResources Block = iota
	BlockReciprocity
	BlockConditionalSupport
	BlockRedFlags
)

// Blocks lists the survey blocks in answer order
var Blocks = []Block{BlockResources, BlockReciprocity, BlockConditionalSupport, BlockRedFlags}

func (b Block) String() string {
	switch b {
	case BlockResources:
		return "Resources"
	case BlockReciprocity:
		return "Reciprocity"
	case BlockConditionalSupport:
		return "ConditionalSupport"
	case BlockRedFlags:
		return "RedFlags"
	default:
		return "Unknown"
	}
}

// Title returns the heading shown above the block's questions
func (b Block) Title() string {
	switch b {
	case BlockResources:
		return "Block 1: Resources"
	case BlockReciprocity:
		return "Block 2: Reciprocity"
	case BlockConditionalSupport:
		return "Block 3: Conditional support"
	case BlockRedFlags:
		return "Block 4: Red flags"
	default:
		return "Unknown block"
	}
}

// Start returns the 0-based index of the block's first question
func (b Block) Start() int {
	return int(b) * BlockSize
}

// BlockOf returns the block a 0-based question index belongs to
func BlockOf(index int) Block {
	return Block(index / BlockSize)
}

// Questions holds the survey text, one entry per answer index
var Questions = [QuestionCount]string{
	"Does the contact provide resources (time, money, connections)?",
	"Is the contact highly valuable for your goals?",
	"Does the contact contribute to your growth?",

	"Does the contact return the resources you invest?",
	"Does the contact keep the relationship reciprocal?",
	"Does the contact keep promises?",

	"Does the contact support you in hard times?",
	"Is the contact ready to help when needed?",
	"Has the contact confirmed reciprocity with support?",

	"Does the contact use manipulation?",
	"Does the contact behave like a parasite?",
	"Does the contact violate your boundaries?",
}
