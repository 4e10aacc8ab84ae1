package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rapport/internal/adapters/clipboard"
	"rapport/internal/adapters/editor"
	"rapport/internal/application/commands"
	"rapport/internal/ports"
)

var (
	exportFile   string
	exportStdout bool
	exportNoCopy bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all contacts as JSON",
	Long: `Write the collection as a JSON snapshot to the export file and copy
it to the clipboard. The contacts file itself is never modified.

Examples:
  rapport-cli export
  rapport-cli export --file backup.json --no-copy
  rapport-cli export --stdout > backup.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var clip ports.Clipboard
		sys := clipboard.System{}
		if !exportNoCopy && !exportStdout && sys.Available() {
			clip = sys
		}

		path := exportFile
		if path == "" && !exportStdout {
			path = cfg.ExportFile
		}

		result, err := commands.NewExportCommand(GetRepo(), clip, path).Execute(context.Background())
		if err != nil {
			return err
		}
		if exportStdout {
			fmt.Println(result.Snapshot)
			return nil
		}
		fmt.Println(result.Message)
		if result.CopyErr != nil {
			fmt.Fprintf(os.Stderr, "warning: clipboard: %v\n", result.CopyErr)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace all contacts with a JSON snapshot",
	Long: `Replace the whole collection with a snapshot. The file defaults to
the export file; use "-" to read standard input. A malformed snapshot
is rejected and nothing changes.

Examples:
  rapport-cli import
  rapport-cli import backup.json
  cat backup.json | rapport-cli import -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.ExportFile
		if len(args) == 1 {
			path = args[0]
		}

		var imp *commands.ImportCommand
		if path == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			imp = commands.NewImportCommand(GetRepo(), string(data))
		} else {
			imp = commands.NewImportFileCommand(GetRepo(), path)
		}

		result, err := imp.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var editSnapshotCmd = &cobra.Command{
	Use:   "edit-snapshot",
	Short: "Edit the whole collection as JSON in $EDITOR",
	Long: `Open the collection as a JSON snapshot in your editor and import it
when the editor exits. Invalid JSON leaves the collection as it was.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewEditSnapshotCommand(GetRepo(), editor.NewOpener()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(editSnapshotCmd)
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "export file (default $RAPPORT_EXPORT_FILE)")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "print the snapshot instead of writing a file")
	exportCmd.Flags().BoolVar(&exportNoCopy, "no-copy", false, "do not copy to the clipboard")
}
