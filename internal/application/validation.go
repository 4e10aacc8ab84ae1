package application

import (
	"fmt"
	"strings"

	"rapport/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "fullName" -> "full name")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"id":          "ID",
		"fullName":    "full name",
		"description": "description",
		"photoPath":   "photo path",
		"question":    "question",
		"snapshot":    "snapshot",
		"theme":       "theme",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateQuestion checks a 1-based question number and returns the answer index
func ValidateQuestion(number int) (int, error) {
	if number < 1 || number > domain.QuestionCount {
		return 0, &ValidationError{
			Field:   "question",
			Message: fmt.Sprintf("question must be between 1 and %d, got %d", domain.QuestionCount, number),
		}
	}
	return number - 1, nil
}

// ParseAnswerMask parses a 12-character string of 1/0 (or y/n) into answers.
// Spaces are ignored so blocks can be written as "111 000 101 000".
func ParseAnswerMask(mask string) (domain.Answers, error) {
	var a domain.Answers
	compact := strings.ReplaceAll(mask, " ", "")
	if domain.CharCount(compact) != domain.QuestionCount {
		return a, &ValidationError{
			Field:   "answers",
			Message: fmt.Sprintf("expected %d answers, got %d", domain.QuestionCount, domain.CharCount(compact)),
		}
	}
	i := 0
	for _, r := range compact {
		switch r {
		case '1', 'y', 'Y':
			a[i] = true
		case '0', 'n', 'N':
		default:
			return a, &ValidationError{
				Field:   "answers",
				Message: fmt.Sprintf("answer %d: expected 1/0 or y/n, got %q", i+1, r),
			}
		}
		i++
	}
	return a, nil
}

// FormatAnswerMask renders answers as block-separated 1/0 groups
func FormatAnswerMask(a domain.Answers) string {
	var b strings.Builder
	for i, v := range a {
		if i > 0 && i%domain.BlockSize == 0 {
			b.WriteByte(' ')
		}
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
