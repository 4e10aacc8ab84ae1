package commands

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"rapport/internal/adapters/jsonfile"
	"rapport/internal/domain"
)

func newTestRepo(t *testing.T) *jsonfile.Store {
	t.Helper()
	store, _ := jsonfile.Open(filepath.Join(t.TempDir(), "contacts.json"), nil)
	return store
}

// sequentialIDs makes created ids predictable for the duration of a test
func sequentialIDs(t *testing.T) {
	t.Helper()
	n := 0
	orig := newID
	newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	t.Cleanup(func() { newID = orig })
}

func seed(t *testing.T, repo *jsonfile.Store, name string, answers ...int) domain.Contact {
	t.Helper()
	c := domain.Contact{ID: "seed-" + name, FullName: name}
	for _, i := range answers {
		c.Answers[i] = true
	}
	repo.Add(c)
	return c
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type fakePrefs struct {
	theme domain.Theme
	err   error
}

func (f *fakePrefs) Theme() domain.Theme { return f.theme }

func (f *fakePrefs) SetTheme(theme domain.Theme) error {
	if f.err != nil {
		return f.err
	}
	f.theme = theme
	return nil
}

func (f *fakePrefs) Close() error { return nil }

// fakeEditor rewrites the opened file instead of launching a process
type fakeEditor struct {
	content string
	keep    bool
	err     error
}

func (f *fakeEditor) OpenFile(path string) error {
	if f.err != nil {
		return f.err
	}
	if f.keep {
		return nil
	}
	return os.WriteFile(path, []byte(f.content), 0644)
}

func (f *fakeEditor) Command(path string) (*exec.Cmd, error) {
	return nil, errors.New("not supported")
}
