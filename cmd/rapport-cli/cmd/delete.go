package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rapport/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a contact",
	Long: `Delete a contact from the collection.

Warning: This operation cannot be undone. Export first if in doubt.

Examples:
  rapport-cli delete 3f2a...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteCommand(GetRepo(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
