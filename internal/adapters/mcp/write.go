package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rapport/internal/application"
	"rapport/internal/application/commands"
	"rapport/internal/domain"
	"rapport/internal/ports"
)

// Instructions is returned to clients on initialize
const Instructions = "rapport-mcp rewrites the whole contacts file on every change. " +
	"Do not run it alongside the rapport TUI on the same data directory: the last process to write discards the other's changes."

// RegisterWriteTools adds all contact-mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.ContactRepository, prefs ports.PreferenceStore) {
	s.AddTool(addTool(), addHandler(repo))
	s.AddTool(updateTool(), updateHandler(repo))
	s.AddTool(answerTool(), answerHandler(repo))
	s.AddTool(deleteTool(), deleteHandler(repo))
	s.AddTool(importTool(), importHandler(repo))
	s.AddTool(setThemeTool(), setThemeHandler(prefs))
}

const answersDescription = "12 answers as 1/0 or y/n in question order, spaces allowed between blocks (e.g. \"111 010 100 000\")"

// --- add_contact ---

func addTool() mcp.Tool {
	return mcp.NewTool("add_contact",
		mcp.WithDescription("Add a contact. A fresh ID is assigned; name and description are cut to 50 characters."),
		mcp.WithString("full_name",
			mcp.Description("Full name"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("Short description"),
		),
		mcp.WithString("photo_path",
			mcp.Description("Path to a photo file"),
		),
		mcp.WithString("answers",
			mcp.Description(answersDescription+". Defaults to all no."),
		),
	)
}

func addHandler(repo ports.ContactRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateContactCommand(repo,
			req.GetString("full_name", ""),
			req.GetString("description", ""),
		)
		cmd.PhotoPath = req.GetString("photo_path", "")

		if mask := req.GetString("answers", ""); mask != "" {
			answers, err := application.ParseAnswerMask(mask)
			if err != nil {
				return toolError(err)
			}
			cmd.Answers = answers
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s\nID: %s", result.Message, result.Contact.ID)), nil
	}
}

// --- update_contact ---

func updateTool() mcp.Tool {
	return mcp.NewTool("update_contact",
		mcp.WithDescription("Change fields of an existing contact. Omitted fields are kept; an empty photo_path removes the photo."),
		mcp.WithString("id",
			mcp.Description("Contact ID"),
			mcp.Required(),
		),
		mcp.WithString("full_name",
			mcp.Description("New full name"),
		),
		mcp.WithString("description",
			mcp.Description("New description"),
		),
		mcp.WithString("photo_path",
			mcp.Description("New photo path, empty to remove"),
		),
		mcp.WithString("answers",
			mcp.Description("Replacement answers: "+answersDescription),
		),
	)
}

func updateHandler(repo ports.ContactRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUpdateContactCommand(repo, req.GetString("id", ""))

		// presence matters here, so read the raw argument map
		args, _ := req.Params.Arguments.(map[string]any)
		if v, ok := stringArg(args, "full_name"); ok {
			cmd.FullName = &v
		}
		if v, ok := stringArg(args, "description"); ok {
			cmd.Description = &v
		}
		if v, ok := stringArg(args, "photo_path"); ok {
			cmd.PhotoPath = &v
		}
		if v, ok := stringArg(args, "answers"); ok {
			answers, err := application.ParseAnswerMask(v)
			if err != nil {
				return toolError(err)
			}
			cmd.Answers = &answers
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func stringArg(args map[string]any, key string) (string, bool) {
	raw, exists := args[key]
	if !exists {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

// --- answer ---

func answerTool() mcp.Tool {
	return mcp.NewTool("answer",
		mcp.WithDescription("Answer one survey question for a contact and report the new score and category."),
		mcp.WithString("id",
			mcp.Description("Contact ID"),
			mcp.Required(),
		),
		mcp.WithNumber("question",
			mcp.Description(fmt.Sprintf("Question number 1-%d (see the questions tool)", domain.QuestionCount)),
			mcp.Required(),
		),
		mcp.WithBoolean("value",
			mcp.Description("true for yes, false for no"),
			mcp.Required(),
		),
	)
}

func answerHandler(repo ports.ContactRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAnswerCommand(repo,
			req.GetString("id", ""),
			req.GetInt("question", 0),
			req.GetBool("value", false),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_contact ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete_contact",
		mcp.WithDescription("Permanently delete a contact."),
		mcp.WithString("id",
			mcp.Description("Contact ID"),
			mcp.Required(),
		),
	)
}

func deleteHandler(repo ports.ContactRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteCommand(repo, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- import_contacts ---

func importTool() mcp.Tool {
	return mcp.NewTool("import_contacts",
		mcp.WithDescription("Replace the whole collection with a JSON snapshot. A malformed snapshot is rejected and nothing changes."),
		mcp.WithString("snapshot",
			mcp.Description("JSON array of contacts as produced by export_contacts"),
			mcp.Required(),
		),
	)
}

func importHandler(repo ports.ContactRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewImportCommand(repo, req.GetString("snapshot", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_theme ---

func setThemeTool() mcp.Tool {
	return mcp.NewTool("set_theme",
		mcp.WithDescription("Persist the UI theme used by the terminal app."),
		mcp.WithString("theme",
			mcp.Description("PRIMARY, DARK or LIGHT"),
			mcp.Required(),
		),
	)
}

func setThemeHandler(prefs ports.PreferenceStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewSetThemeCommand(prefs, req.GetString("theme", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
