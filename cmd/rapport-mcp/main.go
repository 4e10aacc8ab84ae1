package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"rapport/internal/adapters/jsonfile"
	mcpadapter "rapport/internal/adapters/mcp"
	"rapport/internal/adapters/sqlite"
	"rapport/internal/config"
	"rapport/internal/logger"
)

func main() {
	config.LoadDotEnv()
	dataDir := flag.String("data-dir", "", "directory holding contacts and settings")
	flag.Parse()
	if *dataDir != "" {
		os.Setenv("RAPPORT_DATA_DIR", *dataDir)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rapport-mcp: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the protocol
	logFile := cfg.LogFile
	if logFile == "stdout" {
		logFile = "stderr"
	}
	log := logger.Must(cfg.LogLevel, cfg.LogFormat, logFile).With(zap.String("interface", "mcp"))
	defer log.Sync()

	repo, result := jsonfile.Open(cfg.ContactsFile, log)
	log.Info("rapport-mcp starting",
		zap.String("contacts", repo.Path()),
		zap.Stringer("load", result.Outcome),
		zap.Int("count", result.Count),
	)

	prefs, err := sqlite.OpenPreferences(cfg.PrefsDB)
	if err != nil {
		log.Fatal("failed to open preferences", zap.Error(err))
	}
	defer prefs.Close()

	mcpServer := server.NewMCPServer(
		"rapport-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(mcpadapter.Instructions),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, prefs)
	mcpadapter.RegisterWriteTools(mcpServer, repo, prefs)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
}
