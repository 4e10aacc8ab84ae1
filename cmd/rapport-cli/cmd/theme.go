package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rapport/internal/application/commands"
	"rapport/internal/domain"
)

var themeCmd = &cobra.Command{
	Use:   "theme [PRIMARY|DARK|LIGHT]",
	Short: "Show or set the TUI theme",
	Long: `Without an argument, print the current theme and the choices.
With one, store it for the next TUI session.

Examples:
  rapport-cli theme
  rapport-cli theme dark`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := GetPrefs()
		if err != nil {
			return err
		}
		ctx := context.Background()

		if len(args) == 1 {
			result, err := commands.NewSetThemeCommand(prefs, args[0]).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		}

		current, err := commands.NewGetThemeCommand(prefs).Execute(ctx)
		if err != nil {
			return err
		}
		for _, t := range domain.Themes {
			marker := " "
			if t == current {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
