package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rapport/internal/application"
	"rapport/internal/application/commands"
	"rapport/internal/domain"
	"rapport/internal/ports"
)

// RegisterReadTools adds all read-only contact tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.ContactRepository, prefs ports.PreferenceStore) {
	s.AddTool(listTool(), listHandler(repo))
	s.AddTool(boardTool(), boardHandler(repo))
	s.AddTool(getTool(), getHandler(repo))
	s.AddTool(exportTool(), exportHandler(repo))
	s.AddTool(questionsTool(), questionsHandler())
	s.AddTool(getThemeTool(), getThemeHandler(prefs))
}

// --- list_contacts ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_contacts",
		mcp.WithDescription("List contacts with their score and category, in stored order. Optionally filter by category or a fuzzy name/description query."),
		mcp.WithString("category",
			mcp.Description("Only contacts in this category: CRITICAL, ON_HOLD or SAFE"),
		),
		mcp.WithString("query",
			mcp.Description("Fuzzy match against full name and description"),
		),
	)
}

func listHandler(repo ports.ContactRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categoryArg := req.GetString("category", "")
		query := req.GetString("query", "")

		if query != "" {
			results, err := commands.NewSearchCommand(repo, query).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			views := make([]application.ContactView, 0, len(results))
			for _, r := range results {
				views = append(views, r.ContactView)
			}
			return formatViews(filterCategory(views, categoryArg))
		}

		cmd := commands.NewListContactsCommand(repo)
		if categoryArg != "" {
			cat, err := application.ParseCategory(categoryArg)
			if err != nil {
				return toolError(err)
			}
			cmd.Category = &cat
		}
		views, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatViews(views)
	}
}

func filterCategory(views []application.ContactView, categoryArg string) []application.ContactView {
	cat, err := application.ParseCategory(categoryArg)
	if categoryArg == "" || err != nil {
		return views
	}
	var out []application.ContactView
	for _, v := range views {
		if v.Category == cat {
			out = append(out, v)
		}
	}
	return out
}

// --- board ---

func boardTool() mcp.Tool {
	return mcp.NewTool("board",
		mcp.WithDescription("Show the classification board: contacts grouped into CRITICAL, ON_HOLD and SAFE columns."),
	)
}

func boardHandler(repo ports.ContactRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		board, err := commands.NewBoardCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, col := range board.Columns {
			fmt.Fprintf(&sb, "## %s (%d)\n", col.Category.Title(), len(col.Contacts))
			for _, v := range col.Contacts {
				sb.WriteString(formatView(v))
				sb.WriteByte('\n')
			}
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_contact ---

func getTool() mcp.Tool {
	return mcp.NewTool("get_contact",
		mcp.WithDescription("Show one contact with every survey answer and its classification."),
		mcp.WithString("id",
			mcp.Description("Contact ID"),
			mcp.Required(),
		),
	)
}

func getHandler(repo ports.ContactRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		view, err := commands.NewGetContactCommand(repo, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatDetail(*view)), nil
	}
}

// --- export_contacts ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export_contacts",
		mcp.WithDescription("Return the whole collection as a JSON snapshot, in the same format import_contacts accepts."),
	)
}

func exportHandler(repo ports.ContactRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewExportCommand(repo, nil, "").Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Snapshot), nil
	}
}

// --- questions ---

func questionsTool() mcp.Tool {
	return mcp.NewTool("questions",
		mcp.WithDescription("List the 12 survey questions by block. Questions 10-12 are red flags."),
	)
}

func questionsHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		for _, block := range domain.Blocks {
			sb.WriteString(block.Title())
			sb.WriteByte('\n')
			for i := block.Start(); i < block.Start()+domain.BlockSize; i++ {
				fmt.Fprintf(&sb, "  %2d. %s\n", i+1, domain.Questions[i])
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_theme ---

func getThemeTool() mcp.Tool {
	return mcp.NewTool("get_theme",
		mcp.WithDescription("Show the persisted UI theme."),
	)
}

func getThemeHandler(prefs ports.PreferenceStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		theme, err := commands.NewGetThemeCommand(prefs).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s  %s", theme, theme.Label())), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatViews(views []application.ContactView) (*mcp.CallToolResult, error) {
	if len(views) == 0 {
		return mcp.NewToolResultText("No contacts."), nil
	}
	var sb strings.Builder
	for _, v := range views {
		sb.WriteString(formatView(v))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatView(v application.ContactView) string {
	line := fmt.Sprintf("%s  %s  score %d  %s", v.ID, v.FullName, v.Score, v.Category)
	if v.HasRedFlags {
		line += "  red flag"
	}
	return line
}

func formatDetail(v application.ContactView) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID: %s\n", v.ID)
	fmt.Fprintf(&sb, "Name: %s\n", v.FullName)
	fmt.Fprintf(&sb, "Description: %s\n", v.Description)
	if v.HasPhoto() {
		fmt.Fprintf(&sb, "Photo: %s\n", v.Photo())
	}
	fmt.Fprintf(&sb, "Score: %d\n", v.Score)
	fmt.Fprintf(&sb, "Category: %s (%s)\n", v.Category, v.Category.Title())
	fmt.Fprintf(&sb, "Answers: %s\n", application.FormatAnswerMask(v.Answers))
	fmt.Fprintf(&sb, "Yes answers: %d/%d\n", v.Answers.Count(), domain.QuestionCount)
	for i, q := range domain.Questions {
		fmt.Fprintf(&sb, "  %2d. [%s] %s\n", i+1, yesNo(v.Answers[i]), q)
	}
	return sb.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
