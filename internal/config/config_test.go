package config

import (
	"path/filepath"
	"testing"
)

var envKeys = []string{
	"RAPPORT_DATA_DIR",
	"RAPPORT_CONTACTS_FILE",
	"RAPPORT_EXPORT_FILE",
	"RAPPORT_PREFS_DB",
	"RAPPORT_LOG_LEVEL",
	"RAPPORT_LOG_FORMAT",
	"RAPPORT_LOG_FILE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	wantDir := filepath.Join(dataHome, "rapport")
	if cfg.DataDir != wantDir {
		t.Errorf("DataDir = %s, want %s", cfg.DataDir, wantDir)
	}
	if cfg.ContactsFile != filepath.Join(wantDir, "contacts.json") {
		t.Errorf("ContactsFile = %s", cfg.ContactsFile)
	}
	if cfg.ExportFile != filepath.Join(wantDir, "contacts_export.json") {
		t.Errorf("ExportFile = %s", cfg.ExportFile)
	}
	if cfg.PrefsDB != filepath.Join(wantDir, "settings.db") {
		t.Errorf("PrefsDB = %s", cfg.PrefsDB)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %s, want json", cfg.LogFormat)
	}
	if cfg.LogFile != filepath.Join(wantDir, "rapport.log") {
		t.Errorf("LogFile = %s", cfg.LogFile)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("RAPPORT_DATA_DIR", dir)
	t.Setenv("RAPPORT_CONTACTS_FILE", "people.json")
	t.Setenv("RAPPORT_EXPORT_FILE", "/tmp/backup.json")
	t.Setenv("RAPPORT_LOG_LEVEL", "DEBUG")
	t.Setenv("RAPPORT_LOG_FORMAT", "console")
	t.Setenv("RAPPORT_LOG_FILE", "stderr")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ContactsFile != filepath.Join(dir, "people.json") {
		t.Errorf("ContactsFile = %s", cfg.ContactsFile)
	}
	if cfg.ExportFile != "/tmp/backup.json" {
		t.Errorf("ExportFile = %s, want /tmp/backup.json", cfg.ExportFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "console" {
		t.Errorf("LogFormat = %s, want console", cfg.LogFormat)
	}
	if cfg.LogFile != "stderr" {
		t.Errorf("LogFile = %s, want stderr", cfg.LogFile)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{LogLevel: "warn", LogFormat: "json", ContactsFile: "a", ExportFile: "b"},
		},
		{
			name:    "bad level",
			cfg:     Config{LogLevel: "trace", LogFormat: "json", ContactsFile: "a", ExportFile: "b"},
			wantErr: true,
		},
		{
			name:    "bad format",
			cfg:     Config{LogLevel: "info", LogFormat: "xml", ContactsFile: "a", ExportFile: "b"},
			wantErr: true,
		},
		{
			name:    "export overwrites store",
			cfg:     Config{LogLevel: "info", LogFormat: "json", ContactsFile: "a", ExportFile: "a"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
