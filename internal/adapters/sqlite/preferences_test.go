package sqlite

import (
	"path/filepath"
	"testing"

	"rapport/internal/domain"
)

func openTestPreferences(t *testing.T) *Preferences {
	t.Helper()
	p, err := OpenPreferences(filepath.Join(t.TempDir(), "nested", "settings.db"))
	if err != nil {
		t.Fatalf("OpenPreferences() error = %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func TestPreferences_DefaultTheme(t *testing.T) {
	p := openTestPreferences(t)
	if got := p.Theme(); got != domain.ThemePrimary {
		t.Errorf("Theme() = %v, want PRIMARY", got)
	}
}

func TestPreferences_ThemeSurvivesReopen(t *testing.T) {
	p := openTestPreferences(t)
	if err := p.SetTheme(domain.ThemeLight); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	path := p.Path()
	p.Close()

	reopened, err := OpenPreferences(path)
	if err != nil {
		t.Fatalf("OpenPreferences() error = %v", err)
	}
	defer reopened.Close()

	if got := reopened.Theme(); got != domain.ThemeLight {
		t.Errorf("Theme() = %v, want LIGHT", got)
	}
}

func TestPreferences_UnknownStoredThemeFallsBack(t *testing.T) {
	p := openTestPreferences(t)
	if err := p.Set(keyTheme, "SOLARIZED"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := p.Theme(); got != domain.DefaultTheme {
		t.Errorf("Theme() = %v, want %v", got, domain.DefaultTheme)
	}
}

func TestPreferences_GetSet(t *testing.T) {
	p := openTestPreferences(t)

	if _, ok, err := p.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}

	if err := p.Set("k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := p.Set("k", "v2"); err != nil {
		t.Fatal(err)
	}
	got, ok, err := p.Get("k")
	if err != nil || !ok || got != "v2" {
		t.Errorf("Get(k) = %q, %v, %v; want v2", got, ok, err)
	}
}
