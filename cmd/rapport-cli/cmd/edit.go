package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rapport/internal/application"
	"rapport/internal/application/commands"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a contact's fields",
	Long: `Change the name, description, photo or answers of a contact.
Only the flags you pass are changed. An empty --photo removes the photo.

Examples:
  rapport-cli edit 3f2a... --name "Jane Smith"
  rapport-cli edit 3f2a... --photo ""
  rapport-cli edit 3f2a... --answers "111 111 111 000"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updateCmd := commands.NewUpdateContactCommand(GetRepo(), args[0])
		flags := cmd.Flags()

		if flags.Changed("name") {
			v, _ := flags.GetString("name")
			updateCmd.FullName = &v
		}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			updateCmd.Description = &v
		}
		if flags.Changed("photo") {
			v, _ := flags.GetString("photo")
			updateCmd.PhotoPath = &v
		}
		if flags.Changed("answers") {
			v, _ := flags.GetString("answers")
			answers, err := application.ParseAnswerMask(v)
			if err != nil {
				return err
			}
			updateCmd.Answers = &answers
		}

		result, err := updateCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var answerCmd = &cobra.Command{
	Use:   "answer <id> <question 1-12> <yes|no>",
	Short: "Answer one question for a contact",
	Long: `Set a single answer and report the new score and column.

Examples:
  rapport-cli answer 3f2a... 4 yes
  rapport-cli answer 3f2a... 10 no`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var question int
		if _, err := fmt.Sscan(args[1], &question); err != nil {
			return &application.ValidationError{Field: "question", Message: "must be a number between 1 and 12"}
		}
		value, err := parseYesNo(args[2])
		if err != nil {
			return err
		}

		result, err := commands.NewAnswerCommand(GetRepo(), args[0], question, value).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func parseYesNo(s string) (bool, error) {
	switch s {
	case "y", "yes", "1", "true":
		return true, nil
	case "n", "no", "0", "false":
		return false, nil
	}
	return false, &application.ValidationError{Field: "answer", Message: fmt.Sprintf("expected yes or no, got %q", s)}
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(answerCmd)
	editCmd.Flags().StringP("name", "n", "", "new full name")
	editCmd.Flags().String("description", "", "new description")
	editCmd.Flags().StringP("photo", "p", "", "new photo path, empty to remove")
	editCmd.Flags().StringP("answers", "a", "", "replacement answers")
}
