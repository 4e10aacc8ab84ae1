package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rapport/internal/adapters/jsonfile"
	"rapport/internal/domain"
)

type memPrefs struct{ theme domain.Theme }

func (p *memPrefs) Theme() domain.Theme { return p.theme }

func (p *memPrefs) SetTheme(theme domain.Theme) error {
	p.theme = theme
	return nil
}

func (p *memPrefs) Close() error { return nil }

func newRepo(t *testing.T) *jsonfile.Store {
	t.Helper()
	store, _ := jsonfile.Open(filepath.Join(t.TempDir(), "contacts.json"), nil)
	return store
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text, result.IsError
}

func TestAddAndGetContact(t *testing.T) {
	repo := newRepo(t)

	text, isErr := call(t, addHandler(repo), map[string]any{
		"full_name":   "Ada Lovelace",
		"description": "mathematician",
		"answers":     "111 111 100 000",
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, "SAFE")

	contacts := repo.List()
	require.Len(t, contacts, 1)
	assert.Equal(t, 7, contacts[0].Classification().Score)

	text, isErr = call(t, getHandler(repo), map[string]any{"id": contacts[0].ID})
	require.False(t, isErr, text)
	assert.Contains(t, text, "Name: Ada Lovelace")
	assert.Contains(t, text, "Answers: 111 111 100 000")
	assert.Contains(t, text, "Yes answers: 7/12")
}

func TestAddContact_Errors(t *testing.T) {
	repo := newRepo(t)

	_, isErr := call(t, addHandler(repo), map[string]any{"full_name": ""})
	assert.True(t, isErr)

	_, isErr = call(t, addHandler(repo), map[string]any{"full_name": "X", "answers": "1010"})
	assert.True(t, isErr)
	assert.Empty(t, repo.List())
}

func TestUpdateContact_OnlyGivenFields(t *testing.T) {
	repo := newRepo(t)
	photo := "/p.png"
	repo.Add(domain.Contact{ID: "a", FullName: "Old", Description: "keep", PhotoPath: &photo})

	text, isErr := call(t, updateHandler(repo), map[string]any{
		"id":         "a",
		"full_name":  "New",
		"photo_path": "",
	})
	require.False(t, isErr, text)

	got, _ := repo.Find("a")
	assert.Equal(t, "New", got.FullName)
	assert.Equal(t, "keep", got.Description)
	assert.Nil(t, got.PhotoPath)
}

func TestAnswerTool(t *testing.T) {
	repo := newRepo(t)
	repo.Add(domain.Contact{ID: "a", FullName: "A"})

	text, isErr := call(t, answerHandler(repo), map[string]any{
		"id":       "a",
		"question": float64(12),
		"value":    true,
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, "score -10")

	got, _ := repo.Find("a")
	assert.True(t, got.Answers[11])

	_, isErr = call(t, answerHandler(repo), map[string]any{"id": "a", "question": float64(0), "value": true})
	assert.True(t, isErr)
}

func TestBoardAndList(t *testing.T) {
	repo := newRepo(t)
	repo.Add(domain.Contact{ID: "c", FullName: "Cut"})
	repo.Add(domain.Contact{ID: "s", FullName: "Safe", Answers: domain.Answers{true, true, true, true, true, true, true}})

	text, _ := call(t, boardHandler(repo), nil)
	assert.Less(t, strings.Index(text, "Critical"), strings.Index(text, "Safe to engage"))
	assert.Contains(t, text, "c  Cut  score 0  CRITICAL")

	text, _ = call(t, listHandler(repo), map[string]any{"category": "safe"})
	assert.Contains(t, text, "Safe")
	assert.NotContains(t, text, "Cut")

	_, isErr := call(t, listHandler(repo), map[string]any{"category": "purple"})
	assert.True(t, isErr)

	text, _ = call(t, listHandler(repo), map[string]any{"query": "cu"})
	assert.Contains(t, text, "Cut")
	assert.NotContains(t, text, "Safe")
}

func TestExportImportTools(t *testing.T) {
	repo := newRepo(t)
	repo.Add(domain.Contact{ID: "a", FullName: "A"})

	snapshot, isErr := call(t, exportHandler(repo), nil)
	require.False(t, isErr)

	repo.Add(domain.Contact{ID: "b", FullName: "B"})
	text, isErr := call(t, importHandler(repo), map[string]any{"snapshot": snapshot})
	require.False(t, isErr, text)
	assert.Len(t, repo.List(), 1)

	_, isErr = call(t, importHandler(repo), map[string]any{"snapshot": "not json"})
	assert.True(t, isErr)
	assert.Len(t, repo.List(), 1)
}

func TestDeleteTool(t *testing.T) {
	repo := newRepo(t)
	repo.Add(domain.Contact{ID: "a", FullName: "A"})

	_, isErr := call(t, deleteHandler(repo), map[string]any{"id": "a"})
	assert.False(t, isErr)
	assert.Empty(t, repo.List())

	_, isErr = call(t, deleteHandler(repo), map[string]any{"id": "a"})
	assert.True(t, isErr)
}

func TestThemeTools(t *testing.T) {
	prefs := &memPrefs{theme: domain.ThemePrimary}

	_, isErr := call(t, setThemeHandler(prefs), map[string]any{"theme": "light"})
	require.False(t, isErr)
	assert.Equal(t, domain.ThemeLight, prefs.theme)

	text, _ := call(t, getThemeHandler(prefs), nil)
	assert.True(t, strings.HasPrefix(text, "LIGHT"))

	_, isErr = call(t, setThemeHandler(prefs), map[string]any{"theme": "sepia"})
	assert.True(t, isErr)
}

func TestQuestionsTool(t *testing.T) {
	text, _ := call(t, questionsHandler(), nil)
	assert.Contains(t, text, "Block 4: Red flags")
	assert.Contains(t, text, "12. ")
}

func TestInitialize_WarnsAgainstRunningWithTUI(t *testing.T) {
	s := server.NewMCPServer("rapport-mcp", "test", server.WithInstructions(Instructions))

	request, err := json.Marshal(mcp.JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      mcp.NewRequestId(int64(1)),
		Request: mcp.Request{Method: "initialize"},
	})
	require.NoError(t, err)

	resp, ok := s.HandleMessage(context.Background(), request).(mcp.JSONRPCResponse)
	require.True(t, ok)
	result, ok := resp.Result.(mcp.InitializeResult)
	require.True(t, ok)
	assert.Contains(t, result.Instructions, "Do not run it alongside the rapport TUI")
}
