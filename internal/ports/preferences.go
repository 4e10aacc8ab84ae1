package ports

import "rapport/internal/domain"

// PreferenceStore persists user preferences independently of contacts
type PreferenceStore interface {
	// Theme returns the stored theme, or domain.DefaultTheme when absent or invalid
	Theme() domain.Theme
	SetTheme(theme domain.Theme) error
	Close() error
}
