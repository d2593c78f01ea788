// Package config - Scenario catalog overrides
//
// The scenario/table correspondence and the fixed-rule China rates are
// configuration, not literals scattered through resolvers. The built-in
// catalog matches the published schedules; an optional HCL file overrides
// table bindings and rates per scenario:
//
//	scenario "pre-may-2025" {
//	  table            = "Pre_May_25_Section_232_data.csv"
//	  ieepa_china      = 0.20
//	  reciprocal_china = 1.25
//	}
package config

import (
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"tariff-cost/core/types"
	"tariff-cost/internal/errors"
)

type scenariosFile struct {
	Scenarios []scenarioBlock `hcl:"scenario,block"`
}

type scenarioBlock struct {
	Key             string   `hcl:"key,label"`
	Table           *string  `hcl:"table,optional"`
	IEEPAChina      *float64 `hcl:"ieepa_china,optional"`
	ReciprocalChina *float64 `hcl:"reciprocal_china,optional"`
}

// LoadScenarios returns the scenario catalog, applying overrides from the
// given HCL file when it exists. An empty path or a missing file yields
// the built-in catalog.
func LoadScenarios(path string) (types.Catalog, error) {
	catalog := types.DefaultCatalog()
	if path == "" {
		return catalog, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return catalog, nil
	}

	var file scenariosFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "invalid scenarios file", err)
	}

	for _, block := range file.Scenarios {
		sc, err := types.ScenarioFromKey(block.Key)
		if err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "invalid scenarios file", err)
		}
		spec := catalog[sc]
		if block.Table != nil {
			spec.TableFile = *block.Table
		}
		if block.IEEPAChina != nil {
			spec.Rules.IEEPAChina = decimal.NewFromFloat(*block.IEEPAChina)
		}
		if block.ReciprocalChina != nil {
			spec.Rules.ReciprocalChina = decimal.NewFromFloat(*block.ReciprocalChina)
		}
		catalog[sc] = spec
	}

	return catalog, nil
}
