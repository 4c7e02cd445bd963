package fifolot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Currency != "INR" {
		t.Errorf("Currency = %q, want INR", cfg.Currency)
	}
	if cfg.Rounding != 2 {
		t.Errorf("Rounding = %d, want 2", cfg.Rounding)
	}
	if cfg.Chronology != "strict" {
		t.Errorf("Chronology = %q, want strict", cfg.Chronology)
	}
	if cfg.Columns.ScripName != "ScripName" {
		t.Errorf("Columns.ScripName = %q, want ScripName", cfg.Columns.ScripName)
	}
	if cfg.Options().Chronology != Strict {
		t.Errorf("Options().Chronology = %v, want Strict", cfg.Options().Chronology)
	}
}

func TestLoadConfig_File(t *testing.T) {
	content := `
currency: USD
chronology: lenient
columns:
  scrip_name: "Scrip Name"
import:
  rows: "$.trades[*]"
  fields:
    ScripName: "$.symbol"
`
	path := filepath.Join(t.TempDir(), "flm.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.Currency)
	}
	if cfg.Options().Chronology != Lenient {
		t.Errorf("Options().Chronology = %v, want Lenient", cfg.Options().Chronology)
	}
	if cfg.Columns.ScripName != "Scrip Name" {
		t.Errorf("Columns.ScripName = %q, want remapped", cfg.Columns.ScripName)
	}
	// Unset columns keep their defaults.
	if cfg.Columns.TradeDate != "TradeDate" {
		t.Errorf("Columns.TradeDate = %q, want default", cfg.Columns.TradeDate)
	}
	if cfg.Rounding != 2 {
		t.Errorf("Rounding = %d, want default 2", cfg.Rounding)
	}
	if cfg.Import.Rows != "$.trades[*]" {
		t.Errorf("Import.Rows = %q", cfg.Import.Rows)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"bad chronology", "chronology: loose\n"},
		{"bad rounding", "rounding: 12\n"},
		{"bad yaml", "chronology: [\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "flm.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("LoadConfig() = nil error, want failure")
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("LoadConfig() = nil error, want failure for an explicit missing path")
	}
}
