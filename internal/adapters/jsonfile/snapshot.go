package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"rapport/internal/domain"
)

// SnapshotError describes why a snapshot document was rejected
type SnapshotError struct {
	Index  int // record index, -1 for document-level problems
	Reason string
}

func (e *SnapshotError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid snapshot: %s", e.Reason)
	}
	return fmt.Sprintf("invalid snapshot: record %d: %s", e.Index, e.Reason)
}

// record mirrors domain.Contact with pointers so missing fields can be told apart from zero values
type record struct {
	ID          *string         `json:"id"`
	PhotoPath   *string         `json:"photoPath"`
	FullName    *string         `json:"fullName"`
	Description *string         `json:"description"`
	Answers     *domain.Answers `json:"answers"`
}

func (r record) toContact(index int) (domain.Contact, error) {
	missing := func(field string) error {
		return &SnapshotError{Index: index, Reason: field + " is missing or null"}
	}
	switch {
	case r.ID == nil:
		return domain.Contact{}, missing("id")
	case r.FullName == nil:
		return domain.Contact{}, missing("fullName")
	case r.Description == nil:
		return domain.Contact{}, missing("description")
	case r.Answers == nil:
		return domain.Contact{}, missing("answers")
	}

	return domain.Contact{
		ID:          *r.ID,
		PhotoPath:   r.PhotoPath,
		FullName:    *r.FullName,
		Description: *r.Description,
		Answers:     *r.Answers,
	}, nil
}

// EncodeSnapshot serializes contacts in the stored format
func EncodeSnapshot(contacts []domain.Contact) ([]byte, error) {
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return json.MarshalIndent(contacts, "", "  ")
}

// DecodeSnapshot parses a whole document. Any malformed record rejects the document.
func DecodeSnapshot(data []byte) ([]domain.Contact, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, &SnapshotError{Index: -1, Reason: "document is empty"}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &SnapshotError{Index: -1, Reason: err.Error()}
	}
	if raw == nil {
		return nil, &SnapshotError{Index: -1, Reason: "document is null"}
	}

	contacts := make([]domain.Contact, 0, len(raw))
	for i, msg := range raw {
		var r record
		if err := json.Unmarshal(msg, &r); err != nil {
			return nil, &SnapshotError{Index: i, Reason: err.Error()}
		}
		c, err := r.toContact(i)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// IsSnapshotError reports whether err came from snapshot decoding
func IsSnapshotError(err error) bool {
	var se *SnapshotError
	return errors.As(err, &se)
}
