package ports

import "rapport/internal/domain"

// LoadOutcome describes how the stored collection was obtained at load time
type LoadOutcome int

const (
	LoadOutcomeLoaded  LoadOutcome = iota // file parsed
	LoadOutcomeMissing                    // no file yet, empty collection
	LoadOutcomeCorrupt                    // file unreadable or unparsable, empty collection
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadOutcomeLoaded:
		return "loaded"
	case LoadOutcomeMissing:
		return "missing"
	case LoadOutcomeCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// LoadResult reports the outcome of loading the collection.
// Missing and corrupt storage both yield an empty collection; Err carries the reason for corrupt.
type LoadResult struct {
	Outcome LoadOutcome
	Count   int
	Err     error
}

// Empty reports whether the load fell back to an empty collection
func (r LoadResult) Empty() bool {
	return r.Outcome != LoadOutcomeLoaded
}

// ContactRepository owns the durable contact collection.
// Mutations persist the whole collection; persistence failures are not reported to callers.
type ContactRepository interface {
	// Load replaces the in-memory collection with the stored one
	Load() LoadResult

	// Read operations, in-memory only
	List() []domain.Contact
	Find(id string) (domain.Contact, bool)

	// Mutations
	Add(contact domain.Contact)
	Update(contact domain.Contact) bool
	Remove(id string) int

	// Snapshots use the same format as the stored file
	ExportSnapshot() (string, error)
	ImportSnapshot(data string) error

	// Path returns the location of the stored collection
	Path() string
}
