package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"rapport/internal/adapters/clipboard"
	"rapport/internal/adapters/editor"
	"rapport/internal/adapters/jsonfile"
	"rapport/internal/adapters/photo"
	"rapport/internal/adapters/sqlite"
	"rapport/internal/adapters/tui"
	"rapport/internal/adapters/watcher"
	"rapport/internal/config"
	"rapport/internal/logger"
	"rapport/internal/ports"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs never go to stderr here
	logFile := cfg.LogFile
	if logFile == "stderr" || logFile == "stdout" {
		logFile = filepath.Join(cfg.DataDir, config.DefaultLogFile)
	}
	log := logger.Must(cfg.LogLevel, cfg.LogFormat, logFile).With(zap.String("interface", "tui"))
	defer log.Sync()

	repo, result := jsonfile.Open(cfg.ContactsFile, log)
	log.Info("rapport starting",
		zap.String("contacts", repo.Path()),
		zap.Stringer("load", result.Outcome),
		zap.Int("count", result.Count),
	)

	var prefs ports.PreferenceStore
	if p, err := sqlite.OpenPreferences(cfg.PrefsDB); err != nil {
		log.Warn("preferences unavailable, using default theme", zap.Error(err))
	} else {
		prefs = p
		defer p.Close()
	}

	opts := tui.Options{
		Editor:     editor.NewOpener(),
		Photos:     photo.NewOpener(),
		ExportPath: cfg.ExportFile,
		Logger:     log,
	}
	if sys := (clipboard.System{}); sys.Available() {
		opts.Clipboard = sys
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if w, err := watcher.New(repo.Path(), watcher.DefaultDebounce, log); err != nil {
		log.Warn("file watcher unavailable", zap.Error(err))
	} else {
		w.Start(ctx)
		defer w.Stop()
		opts.Changes = w.Changes()
	}

	app := tui.NewApp(repo, prefs, opts)
	app.WarnLoad(result)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
