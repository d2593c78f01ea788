// Package compose assembles per-scenario tariff results.
package compose

import (
	"github.com/shopspring/decimal"

	"tariff-cost/core/resolver"
	"tariff-cost/core/tables"
	"tariff-cost/core/types"
)

// Compose resolves every program rate for each fixed scenario and decides
// between a single blended total and a two-part composite. The general
// rate is supplied by the caller (it comes from the duty-text
// interpretation step) and is reused unchanged across all scenarios.
//
// A scenario is composite exactly when its Section 232 rate is positive.
// The metal component excludes the reciprocal tariff and the other
// component excludes Section 232; the two programs apply to mutually
// exclusive value shares, never additively.
func Compose(code, country string, generalRate decimal.Decimal, store *tables.Store, catalog types.Catalog) *types.CalculationResult {
	result := &types.CalculationResult{
		Scenarios: make(map[types.Scenario]types.ScenarioResult, len(catalog)),
	}

	for _, sc := range types.Scenarios() {
		spec := catalog[sc]

		s301 := resolver.Section301(code, country, store.Section301())
		s232 := resolver.Section232(code, store.Section232(sc))
		ieepa := resolver.IEEPA(country, spec)
		reciprocal := resolver.Reciprocal(country, spec)

		sr := types.ScenarioResult{
			Scenario: sc,
			Components: map[types.Component]decimal.Decimal{
				types.ComponentGeneral:    generalRate,
				types.ComponentSection301: s301,
				types.ComponentIEEPA:      ieepa,
				types.ComponentSection232: s232,
				types.ComponentReciprocal: reciprocal,
			},
		}

		base := generalRate.Add(s301).Add(ieepa)
		if s232.IsPositive() {
			sr.IsComposite = true
			sr.MetalRate = base.Add(s232)
			sr.OtherRate = base.Add(reciprocal)
		} else {
			sr.TotalRate = base.Add(s232).Add(reciprocal)
		}

		result.Scenarios[sc] = sr
	}

	return result
}
