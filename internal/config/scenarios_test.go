package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"tariff-cost/core/types"
	"tariff-cost/internal/errors"
)

func TestLoadScenariosDefaults(t *testing.T) {
	catalog, err := LoadScenarios("")
	if err != nil {
		t.Fatalf("LoadScenarios: %v", err)
	}

	pre := catalog[types.ScenarioPreMay2025]
	if pre.TableFile != "Pre_May_25_Section_232_data.csv" {
		t.Errorf("table file %q", pre.TableFile)
	}
	if !pre.Rules.IEEPAChina.Equal(decimal.RequireFromString("0.20")) {
		t.Errorf("ieepa %s, want 0.20", pre.Rules.IEEPAChina)
	}
	if !pre.Rules.ReciprocalChina.Equal(decimal.RequireFromString("1.25")) {
		t.Errorf("reciprocal %s, want 1.25", pre.Rules.ReciprocalChina)
	}
}

func TestLoadScenariosMissingFileFallsBack(t *testing.T) {
	catalog, err := LoadScenarios(filepath.Join(t.TempDir(), "absent.hcl"))
	if err != nil {
		t.Fatalf("LoadScenarios: %v", err)
	}
	if len(catalog) != 3 {
		t.Errorf("catalog size %d, want 3", len(catalog))
	}
}

func TestLoadScenariosOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.hcl")
	content := `
scenario "post-may-2025" {
  table            = "custom_232.csv"
  reciprocal_china = 0.15
}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadScenarios(path)
	if err != nil {
		t.Fatalf("LoadScenarios: %v", err)
	}

	post := catalog[types.ScenarioPostMay2025]
	if post.TableFile != "custom_232.csv" {
		t.Errorf("table file %q, want custom_232.csv", post.TableFile)
	}
	if !post.Rules.ReciprocalChina.Equal(decimal.RequireFromString("0.15")) {
		t.Errorf("reciprocal %s, want 0.15", post.Rules.ReciprocalChina)
	}
	// Untouched attributes keep their defaults.
	if !post.Rules.IEEPAChina.Equal(decimal.RequireFromString("0.20")) {
		t.Errorf("ieepa %s, want default 0.20", post.Rules.IEEPAChina)
	}
	pre := catalog[types.ScenarioPreMay2025]
	if pre.TableFile != "Pre_May_25_Section_232_data.csv" {
		t.Errorf("other scenario changed: %q", pre.TableFile)
	}
}

func TestLoadScenariosUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.hcl")
	if err := os.WriteFile(path, []byte("scenario \"mystery\" {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadScenarios(path)
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}
