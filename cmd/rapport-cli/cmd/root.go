package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rapport/internal/adapters/jsonfile"
	"rapport/internal/adapters/sqlite"
	"rapport/internal/config"
	"rapport/internal/logger"
	"rapport/internal/ports"
)

var (
	dataDir string
	cfg     *config.Config
	log     *zap.Logger
	repo    ports.ContactRepository
	prefs   ports.PreferenceStore
)

var rootCmd = &cobra.Command{
	Use:   "rapport-cli",
	Short: "Triage your contacts from the command line",
	Long: `rapport-cli manages the same contact collection as the rapport TUI.

Each contact answers twelve yes/no questions in four blocks. The answers
give a score and sort the contact into CRITICAL, ON_HOLD or SAFE.

Do not change contacts here or through rapport-mcp while the TUI is open:
each process rewrites the whole file and the last write wins.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "questions" {
			return nil
		}
		config.LoadDotEnv()
		if dataDir != "" {
			os.Setenv("RAPPORT_DATA_DIR", dataDir)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		log = logger.Must(cfg.LogLevel, cfg.LogFormat, cfg.LogFile).With(zap.String("interface", "cli"))

		store, result := jsonfile.Open(cfg.ContactsFile, log)
		if result.Empty() && result.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s is unreadable, starting with no contacts: %v\n", store.Path(), result.Err)
		}
		repo = store
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if prefs != nil {
			err = prefs.Close()
		}
		if log != nil {
			_ = log.Sync()
		}
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "directory holding contacts and settings (default $RAPPORT_DATA_DIR or the XDG data dir)")
}

// GetRepo returns the initialized repository
func GetRepo() ports.ContactRepository {
	return repo
}

// GetPrefs opens the preference store on first use
func GetPrefs() (ports.PreferenceStore, error) {
	if prefs != nil {
		return prefs, nil
	}
	if cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	p, err := sqlite.OpenPreferences(cfg.PrefsDB)
	if err != nil {
		return nil, err
	}
	prefs = p
	return prefs, nil
}
