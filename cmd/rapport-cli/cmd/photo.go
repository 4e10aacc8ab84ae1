package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rapport/internal/adapters/photo"
	"rapport/internal/application/commands"
)

var photoCmd = &cobra.Command{
	Use:   "photo <id>",
	Short: "Open a contact's photo in the image viewer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := commands.NewGetContactCommand(GetRepo(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		if !v.HasPhoto() {
			return fmt.Errorf("%s: %w", v.FullName, photo.ErrNoPhoto)
		}
		if err := photo.NewOpener().Open(v.Photo()); err != nil {
			return err
		}
		fmt.Printf("Opened %s\n", v.Photo())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(photoCmd)
}
