// Package types - Scenario identity and the scenario catalog
package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scenario identifies one of the fixed regulatory time-scenarios.
type Scenario int

const (
	// Scenario2024 is the 2024 tariff regime
	Scenario2024 Scenario = iota

	// ScenarioPreMay2025 is the regime in effect before May 2025
	ScenarioPreMay2025

	// ScenarioPostMay2025 is the regime in effect from May 2025
	ScenarioPostMay2025
)

// Scenarios returns all scenarios in display order.
func Scenarios() []Scenario {
	return []Scenario{Scenario2024, ScenarioPreMay2025, ScenarioPostMay2025}
}

// Key returns the stable machine-readable identifier.
func (s Scenario) Key() string {
	switch s {
	case Scenario2024:
		return "2024"
	case ScenarioPreMay2025:
		return "pre-may-2025"
	case ScenarioPostMay2025:
		return "post-may-2025"
	}
	return "unknown"
}

// DisplayName returns the human-readable scenario name.
func (s Scenario) DisplayName() string {
	switch s {
	case Scenario2024:
		return "2024 Tariff"
	case ScenarioPreMay2025:
		return "Pre-May 2025"
	case ScenarioPostMay2025:
		return "Post-May 2025"
	}
	return "Unknown"
}

// String returns the string representation
func (s Scenario) String() string {
	return s.Key()
}

// MarshalText implements encoding.TextMarshaler so scenario-keyed maps
// serialize with readable keys.
func (s Scenario) MarshalText() ([]byte, error) {
	return []byte(s.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Scenario) UnmarshalText(text []byte) error {
	sc, err := ScenarioFromKey(string(text))
	if err != nil {
		return err
	}
	*s = sc
	return nil
}

// ScenarioFromKey resolves a scenario from its stable key.
func ScenarioFromKey(key string) (Scenario, error) {
	for _, sc := range Scenarios() {
		if sc.Key() == key {
			return sc, nil
		}
	}
	return 0, fmt.Errorf("unknown scenario: %q", key)
}

// RuleSet holds the fixed-rule rates a scenario applies when the country
// of origin is China. Every other country takes zero from both rules.
type RuleSet struct {
	// IEEPAChina is the IEEPA rate for Chinese-origin goods
	IEEPAChina decimal.Decimal `json:"ieepa_china"`

	// ReciprocalChina is the reciprocal tariff rate for Chinese-origin goods
	ReciprocalChina decimal.Decimal `json:"reciprocal_china"`
}

// ScenarioSpec binds a scenario to its Section 232 table and rule set.
type ScenarioSpec struct {
	// Scenario is the scenario identity
	Scenario Scenario `json:"scenario"`

	// TableFile is the Section 232 dataset file for this scenario
	TableFile string `json:"table_file"`

	// Rules holds the scenario's fixed-rule rates
	Rules RuleSet `json:"rules"`
}

// Catalog maps each scenario to its spec. Iterate via Scenarios() for
// display order.
type Catalog map[Scenario]ScenarioSpec

// DefaultCatalog returns the built-in scenario catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Scenario2024: {
			Scenario:  Scenario2024,
			TableFile: "2024_Section_232_data.csv",
			Rules: RuleSet{
				IEEPAChina:      decimal.Zero,
				ReciprocalChina: decimal.Zero,
			},
		},
		ScenarioPreMay2025: {
			Scenario:  ScenarioPreMay2025,
			TableFile: "Pre_May_25_Section_232_data.csv",
			Rules: RuleSet{
				IEEPAChina:      decimal.RequireFromString("0.20"),
				ReciprocalChina: decimal.RequireFromString("1.25"),
			},
		},
		ScenarioPostMay2025: {
			Scenario:  ScenarioPostMay2025,
			TableFile: "Post_May_25_Section_232_data.csv",
			Rules: RuleSet{
				IEEPAChina:      decimal.RequireFromString("0.20"),
				ReciprocalChina: decimal.RequireFromString("0.10"),
			},
		},
	}
}
