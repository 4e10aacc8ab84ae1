package commands

import (
	"context"
	"fmt"

	"rapport/internal/application"
	"rapport/internal/domain"
	"rapport/internal/ports"
)

// GetThemeCommand reads the theme preference
type GetThemeCommand struct {
	prefs ports.PreferenceStore
}

// NewGetThemeCommand creates a new GetThemeCommand
func NewGetThemeCommand(prefs ports.PreferenceStore) *GetThemeCommand {
	return &GetThemeCommand{prefs: prefs}
}

// Execute runs the get theme command
func (c *GetThemeCommand) Execute(ctx context.Context) (domain.Theme, error) {
	return c.prefs.Theme(), nil
}

// SetThemeResult contains the result of changing the theme
type SetThemeResult struct {
	Theme   domain.Theme
	Message string
}

// SetThemeCommand stores a new theme preference
type SetThemeCommand struct {
	prefs ports.PreferenceStore
	Name  string
}

// NewSetThemeCommand creates a new SetThemeCommand
func NewSetThemeCommand(prefs ports.PreferenceStore, name string) *SetThemeCommand {
	return &SetThemeCommand{
		prefs: prefs,
		Name:  name,
	}
}

// Validate checks the theme name
func (c *SetThemeCommand) Validate() error {
	if err := application.ValidateRequired("theme", c.Name); err != nil {
		return err
	}
	if _, err := domain.ParseTheme(c.Name); err != nil {
		return &application.ValidationError{Field: "theme", Message: err.Error()}
	}
	return nil
}

// Execute runs the set theme command
func (c *SetThemeCommand) Execute(ctx context.Context) (*SetThemeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	theme, _ := domain.ParseTheme(c.Name)

	if err := c.prefs.SetTheme(theme); err != nil {
		return nil, fmt.Errorf("failed to save theme: %w", err)
	}

	return &SetThemeResult{
		Theme:   theme,
		Message: fmt.Sprintf("Theme set to %s", theme.Label()),
	}, nil
}
