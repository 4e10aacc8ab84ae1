package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rapport/internal/adapters/watcher"
	"rapport/internal/application"
	"rapport/internal/application/commands"
	"rapport/internal/domain"
)

var (
	listCategory string
	boardWatch   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts in stored order",
	Long: `List every contact with its score and category.

Examples:
  rapport-cli list
  rapport-cli list --category critical`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listCmd := commands.NewListContactsCommand(GetRepo())
		if listCategory != "" {
			cat, err := domain.ParseCategory(listCategory)
			if err != nil {
				return err
			}
			listCmd.Category = &cat
		}

		contacts, err := listCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		if len(contacts) == 0 {
			fmt.Println("No contacts")
			return nil
		}
		for _, v := range contacts {
			fmt.Println(formatRow(v))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one contact with all answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := commands.NewGetContactCommand(GetRepo(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s\n", v.ID, v.FullName)
		if v.Description != "" {
			fmt.Printf("  %s\n", v.Description)
		}
		if v.HasPhoto() {
			fmt.Printf("  photo: %s\n", v.Photo())
		}
		fmt.Printf("  score %d, %s\n", v.Score, v.Category.Title())
		for _, block := range domain.Blocks {
			fmt.Printf("\n  %s\n", block.Title())
			for i, answer := range v.Answers.Block(block) {
				n := block.Start() + i
				fmt.Printf("    %2d. [%s] %s\n", n+1, mark(answer), domain.Questions[n])
			}
		}
		return nil
	},
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show contacts grouped by category",
	Long: `Print the triage board: CRITICAL, ON_HOLD and SAFE columns.

With --watch the board is printed again whenever the contacts file
changes, for example while the TUI is open in another terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := printBoard(); err != nil {
			return err
		}
		if !boardWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w, err := watcher.New(GetRepo().Path(), watcher.DefaultDebounce, log)
		if err != nil {
			return err
		}
		w.Start(ctx)
		defer w.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-w.Changes():
				result := GetRepo().Load()
				log.Debug("board reloaded", zap.Stringer("outcome", result.Outcome))
				fmt.Println()
				if err := printBoard(); err != nil {
					return err
				}
			}
		}
	},
}

func printBoard() error {
	board, err := commands.NewBoardCommand(GetRepo()).Execute(context.Background())
	if err != nil {
		return err
	}
	for _, col := range board.Columns {
		fmt.Printf("%s (%d)\n", col.Category.Title(), len(col.Contacts))
		for _, v := range col.Contacts {
			fmt.Printf("  %s\n", formatRow(v))
		}
	}
	return nil
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search contacts by name or description",
	Long: `Search contacts by name or description.

Results are ranked by relevance using fuzzy matching.

Examples:
  rapport-cli search jane
  rapport-cli search flatmate`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := commands.NewSearchCommand(GetRepo(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, r := range results {
			fmt.Println(formatRow(r.ContactView))
		}
		return nil
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the twelve questions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, block := range domain.Blocks {
			fmt.Println(block.Title())
			for i := range domain.BlockSize {
				n := block.Start() + i
				fmt.Printf("  %2d. %s\n", n+1, domain.Questions[n])
			}
		}
	},
}

func formatRow(v application.ContactView) string {
	row := fmt.Sprintf("%s  %-50s  %3d  %s", v.ID, v.FullName, v.Score, v.Category)
	if v.HasRedFlags {
		row += "  red flag"
	}
	return strings.TrimRight(row, " ")
}

func mark(v bool) string {
	if v {
		return "x"
	}
	return " "
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(questionsCmd)
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "only CRITICAL, ON_HOLD or SAFE")
	boardCmd.Flags().BoolVarP(&boardWatch, "watch", "w", false, "reprint when the contacts file changes")
}
