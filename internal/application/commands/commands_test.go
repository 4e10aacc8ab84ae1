package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rapport/internal/application"
	"rapport/internal/domain"
)

func TestCreateContactCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		wantErr  bool
	}{
		{"valid", "Jane", false},
		{"empty name", "", true},
		{"whitespace name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &CreateContactCommand{FullName: tt.fullName}
			err := cmd.Validate()
			if tt.wantErr {
				var ve *application.ValidationError
				assert.ErrorAs(t, err, &ve)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateContactCommand_Execute(t *testing.T) {
	sequentialIDs(t)
	repo := newTestRepo(t)

	cmd := NewCreateContactCommand(repo, "  "+strings.Repeat("n", 60)+"  ", strings.Repeat("d", 70))
	cmd.PhotoPath = "/photos/n.png"
	cmd.Answers = domain.Answers{true, true, true, true, true, true, true}

	result, err := cmd.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "id-1", result.Contact.ID)
	assert.Equal(t, strings.Repeat("n", 50), result.Contact.FullName)
	assert.Equal(t, strings.Repeat("d", 50), result.Contact.Description)
	assert.Equal(t, "/photos/n.png", result.Contact.Photo())
	assert.Equal(t, domain.CategorySafe, result.Classification.Category)

	stored, ok := repo.Find("id-1")
	require.True(t, ok)
	assert.Equal(t, result.Contact, stored)
}

func TestCreateContactCommand_DescriptionStoredUnpadded(t *testing.T) {
	repo := newTestRepo(t)

	result, err := NewCreateContactCommand(repo, "Bob", "  neighbour  ").Execute(context.Background())
	require.NoError(t, err)

	stored, ok := repo.Find(result.Contact.ID)
	require.True(t, ok)
	assert.Equal(t, "neighbour", stored.Description)
	assert.Equal(t, "neighbour"+strings.Repeat(" ", 41), stored.NormalizedDescription())

	desc := "moved away   "
	update := NewUpdateContactCommand(repo, stored.ID)
	update.Description = &desc
	_, err = update.Execute(context.Background())
	require.NoError(t, err)

	stored, _ = repo.Find(stored.ID)
	assert.Equal(t, "moved away", stored.Description)
}

func TestCreateContactCommand_FreshIDs(t *testing.T) {
	repo := newTestRepo(t)
	a, err := NewCreateContactCommand(repo, "A", "").Execute(context.Background())
	require.NoError(t, err)
	b, err := NewCreateContactCommand(repo, "B", "").Execute(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, a.Contact.ID)
	assert.NotEqual(t, a.Contact.ID, b.Contact.ID)
	assert.Nil(t, a.Contact.PhotoPath)
}

func TestUpdateContactCommand(t *testing.T) {
	repo := newTestRepo(t)
	photo := "/p.png"
	c := seed(t, repo, "Alice")
	c.PhotoPath = &photo
	repo.Update(c)

	name := "Alicia"
	none := ""
	answers := domain.Answers{true, true, true}
	cmd := NewUpdateContactCommand(repo, c.ID)
	cmd.FullName = &name
	cmd.PhotoPath = &none
	cmd.Answers = &answers

	result, err := cmd.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alicia", result.Contact.FullName)
	assert.Nil(t, result.Contact.PhotoPath)
	assert.Equal(t, domain.CategoryOnHold, result.Classification.Category)

	stored, _ := repo.Find(c.ID)
	assert.Equal(t, result.Contact, stored)
}

func TestUpdateContactCommand_Errors(t *testing.T) {
	repo := newTestRepo(t)
	name := "X"

	_, err := NewUpdateContactCommand(repo, "missing").Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrNothingChanged)

	cmd := NewUpdateContactCommand(repo, "missing")
	cmd.FullName = &name
	_, err = cmd.Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrNotFound)
	assert.Empty(t, repo.List())
}

func TestAnswerCommand(t *testing.T) {
	repo := newTestRepo(t)
	c := seed(t, repo, "Bob", 0, 1, 2, 3, 4, 5, 6)

	result, err := NewAnswerCommand(repo, c.ID, 10, true).Execute(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Contact.Answers[9])
	assert.Equal(t, domain.CategorySafe, result.Previous.Category)
	assert.Equal(t, domain.CategoryCritical, result.Classification.Category)
	assert.Equal(t, -3, result.Classification.Score)
	assert.True(t, result.Moved())
	assert.Contains(t, result.Message, "was SAFE")
}

func TestAnswerCommand_Validate(t *testing.T) {
	repo := newTestRepo(t)
	c := seed(t, repo, "Bob")

	_, err := NewAnswerCommand(repo, c.ID, 13, true).Execute(context.Background())
	var ve *application.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = NewAnswerCommand(repo, "nope", 1, true).Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestDeleteCommand(t *testing.T) {
	repo := newTestRepo(t)
	c := seed(t, repo, "Carol")

	result, err := NewDeleteCommand(repo, c.ID).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Removed)
	assert.Equal(t, "Deleted Carol", result.Message)

	_, err = NewDeleteCommand(repo, c.ID).Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestListContactsCommand_CategoryFilter(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, "critical")
	seed(t, repo, "hold", 0, 1, 2)
	seed(t, repo, "safe", 0, 1, 2, 3, 4, 5, 6, 7)

	all, err := NewListContactsCommand(repo).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	cat := domain.CategoryOnHold
	cmd := NewListContactsCommand(repo)
	cmd.Category = &cat
	held, err := cmd.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, held, 1)
	assert.Equal(t, "hold", held[0].FullName)
	assert.Equal(t, 3, held[0].Score)
}

func TestBoardCommand(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, "a", 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	seed(t, repo, "b", 0, 1, 2, 3)
	seed(t, repo, "c")
	seed(t, repo, "d", 0, 1, 2, 3, 4, 5, 6)

	board, err := NewBoardCommand(repo).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, board.Columns, 3)
	assert.Equal(t, domain.CategoryCritical, board.Columns[0].Category)
	assert.Equal(t, 4, board.Total())

	names := func(cat domain.Category) []string {
		var out []string
		for _, v := range board.Column(cat).Contacts {
			out = append(out, v.FullName)
		}
		return out
	}
	assert.Equal(t, []string{"a", "c"}, names(domain.CategoryCritical))
	assert.Equal(t, []string{"b"}, names(domain.CategoryOnHold))
	assert.Equal(t, []string{"d"}, names(domain.CategorySafe))
}

func TestExportCommand(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, "Alice")
	clip := &fakeClipboard{}
	exportPath := filepath.Join(t.TempDir(), "out", "contacts_export.json")

	result, err := NewExportCommand(repo, clip, exportPath).Execute(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Copied)
	assert.Equal(t, result.Snapshot, clip.text)
	written, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Equal(t, result.Snapshot, string(written))
	assert.Contains(t, result.Message, "clipboard")
}

func TestExportCommand_ClipboardFailureIsNotFatal(t *testing.T) {
	repo := newTestRepo(t)
	clip := &fakeClipboard{err: errors.New("no display")}

	result, err := NewExportCommand(repo, clip, "").Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Copied)
	assert.Error(t, result.CopyErr)
	assert.Equal(t, "[]", result.Snapshot)
}

func TestImportCommand(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, "Alice")
	snapshot, err := repo.ExportSnapshot()
	require.NoError(t, err)
	seed(t, repo, "Bob")

	result, err := NewImportCommand(repo, snapshot).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Len(t, repo.List(), 1)
}

func TestImportCommand_Malformed(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, "Alice")

	_, err := NewImportCommand(repo, `[{"id": 5}]`).Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrImportFailed)
	assert.Len(t, repo.List(), 1)

	_, err = NewImportFileCommand(repo, filepath.Join(t.TempDir(), "missing.json")).Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrImportFailed)
	assert.Len(t, repo.List(), 1)
}

func TestImportFileCommand(t *testing.T) {
	repo := newTestRepo(t)
	path := filepath.Join(t.TempDir(), "in.json")
	data := `[{"id":"x","photoPath":null,"fullName":"X","description":"","answers":[false,false,false,false,false,false,false,false,false,false,false,false]}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	result, err := NewImportFileCommand(repo, path).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	_, ok := repo.Find("x")
	assert.True(t, ok)
}

func TestThemeCommands(t *testing.T) {
	prefs := &fakePrefs{theme: domain.ThemePrimary}

	result, err := NewSetThemeCommand(prefs, "dark").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, result.Theme)

	theme, err := NewGetThemeCommand(prefs).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)

	_, err = NewSetThemeCommand(prefs, "neon").Execute(context.Background())
	var ve *application.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, domain.ThemeDark, prefs.theme)
}

func TestEditSnapshotCommand(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, "Alice")

	t.Run("unchanged", func(t *testing.T) {
		result, err := NewEditSnapshotCommand(repo, &fakeEditor{keep: true}).Execute(context.Background())
		require.NoError(t, err)
		assert.False(t, result.Changed)
	})

	t.Run("invalid edit keeps collection", func(t *testing.T) {
		_, err := NewEditSnapshotCommand(repo, &fakeEditor{content: "oops"}).Execute(context.Background())
		assert.ErrorIs(t, err, application.ErrImportFailed)
		assert.Len(t, repo.List(), 1)
	})

	t.Run("valid edit replaces collection", func(t *testing.T) {
		edited := `[{"id":"n","photoPath":null,"fullName":"New","description":"","answers":[true,true,true,true,true,true,true,false,false,false,false,false]},
{"id":"m","photoPath":null,"fullName":"More","description":"","answers":[false,false,false,false,false,false,false,false,false,false,false,false]}]`
		result, err := NewEditSnapshotCommand(repo, &fakeEditor{content: edited}).Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.Equal(t, 2, result.Count)
	})
}

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		query   string
		want    int
		wantMin int
	}{
		{name: "exact match", target: "Alice", query: "Alice", want: 150},
		{name: "substring match", target: "Mary Alice", query: "alice", want: 100},
		{name: "case folded", target: "ÖLAF", query: "ölaf", want: 150},
		{name: "fuzzy", target: "Jane Smith", query: "jsm", wantMin: 1},
		{name: "no match", target: "Alice", query: "xyz", want: 0},
		{name: "empty query", target: "Alice", query: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FuzzyScore(tt.target, tt.query)
			if tt.wantMin > 0 {
				assert.GreaterOrEqual(t, got, tt.wantMin)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchCommand(t *testing.T) {
	repo := newTestRepo(t)
	seed(t, repo, "Bob Alison")
	seed(t, repo, "Alice")
	seed(t, repo, "Zed")

	results, err := NewSearchCommand(repo, "ali").Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Alice", results[0].FullName, "prefix match ranks first")
}
