package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

const appName = "rapport"

const (
	DefaultContactsFile = "contacts.json"
	DefaultExportFile   = "contacts_export.json"
	DefaultPrefsDB      = "settings.db"
	DefaultLogFile      = "rapport.log"
)

// Config holds file locations and logging settings
type Config struct {
	DataDir      string
	ContactsFile string
	ExportFile   string
	PrefsDB      string

	LogLevel  string
	LogFormat string
	LogFile   string // "stderr" or "stdout" for a stream
}

// LoadDotEnv reads a .env file from the working directory if present
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Load reads configuration from environment variables.
// Relative file names are placed inside DataDir.
func Load() (*Config, error) {
	dataDir := expandHome(getEnv("RAPPORT_DATA_DIR", defaultDataDir()))

	cfg := &Config{
		DataDir:      dataDir,
		ContactsFile: inDir(dataDir, getEnv("RAPPORT_CONTACTS_FILE", DefaultContactsFile)),
		ExportFile:   inDir(dataDir, getEnv("RAPPORT_EXPORT_FILE", DefaultExportFile)),
		PrefsDB:      inDir(dataDir, getEnv("RAPPORT_PREFS_DB", DefaultPrefsDB)),
		LogLevel:     strings.ToLower(getEnv("RAPPORT_LOG_LEVEL", "info")),
		LogFormat:    strings.ToLower(getEnv("RAPPORT_LOG_FORMAT", "json")),
		LogFile:      getEnv("RAPPORT_LOG_FILE", DefaultLogFile),
	}
	if !isStream(cfg.LogFile) {
		cfg.LogFile = inDir(dataDir, cfg.LogFile)
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("RAPPORT_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("RAPPORT_LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	if c.ContactsFile == c.ExportFile {
		return fmt.Errorf("export file must differ from contacts file: %s", c.ContactsFile)
	}
	return nil
}

func defaultDataDir() string {
	// XDG_DATA_HOME wins so tests can redirect storage
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, appName)
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func inDir(dir, name string) string {
	name = expandHome(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func isStream(name string) bool {
	return name == "stderr" || name == "stdout"
}
