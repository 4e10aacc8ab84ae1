package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rapport/internal/application"
	"rapport/internal/application/commands"
)

var (
	addPhoto   string
	addAnswers string
)

var addCmd = &cobra.Command{
	Use:   "add <full-name> [description]",
	Short: "Add a contact",
	Long: `Add a new contact. Name and description are cut to 50 characters.

Answers are twelve 1/0 (or y/n) flags in question order; spaces between
blocks are allowed. Run "rapport-cli questions" to see them.

Examples:
  rapport-cli add "Jane Doe" "Old flatmate"
  rapport-cli add "Jane Doe" --answers "111 110 100 000"
  rapport-cli add "Jane Doe" --photo ~/Pictures/jane.jpg`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := ""
		if len(args) > 1 {
			description = args[1]
		}

		createCmd := commands.NewCreateContactCommand(GetRepo(), args[0], description)
		createCmd.PhotoPath = addPhoto
		if addAnswers != "" {
			answers, err := application.ParseAnswerMask(addAnswers)
			if err != nil {
				return err
			}
			createCmd.Answers = answers
		}

		result, err := createCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		fmt.Println(result.Contact.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addPhoto, "photo", "p", "", "path to a photo")
	addCmd.Flags().StringVarP(&addAnswers, "answers", "a", "", "twelve answers, e.g. \"111 010 100 000\"")
}
