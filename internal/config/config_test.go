package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Store != StoreExcel {
		t.Errorf("Store = %q, want %q", cfg.Store, StoreExcel)
	}
	if !strings.HasSuffix(cfg.DataFile, "time_records.xlsx") {
		t.Errorf("DataFile = %q, want default .xlsx path", cfg.DataFile)
	}
	if cfg.WorkweekOnly {
		t.Error("WorkweekOnly = true, want false by default")
	}
}

func TestLoadFileParsesSettings(t *testing.T) {
	path := writeConfig(t, "store: sqlite\nworkweek_only: true\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Store != StoreSQLite {
		t.Errorf("Store = %q, want %q", cfg.Store, StoreSQLite)
	}
	if !cfg.WorkweekOnly {
		t.Error("WorkweekOnly = false, want true")
	}
	// The default data file follows the chosen backend.
	if !strings.HasSuffix(cfg.DataFile, "time_records.db") {
		t.Errorf("DataFile = %q, want default .db path", cfg.DataFile)
	}
}

func TestLoadFileKeepsExplicitDataFile(t *testing.T) {
	path := writeConfig(t, "data_file: /tmp/my-hours.xlsx\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.DataFile != "/tmp/my-hours.xlsx" {
		t.Errorf("DataFile = %q, want /tmp/my-hours.xlsx", cfg.DataFile)
	}
}

func TestLoadFileRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, "store: postgres\n")

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "store: [unclosed\n")

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
