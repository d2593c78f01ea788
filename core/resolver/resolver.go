// Package resolver implements the per-program tariff rate resolvers.
//
// Every resolver is a pure function returning a non-negative decimal
// fraction (0.25 means 25%), never a percentage integer. Lookup misses and
// unparseable duty fields resolve to zero; nothing here returns an error.
package resolver

import (
	"strings"

	"github.com/shopspring/decimal"

	"tariff-cost/core/hts"
	"tariff-cost/core/types"
)

const china = "china"

var hundred = decimal.NewFromInt(100)

func isChina(country string) bool {
	return strings.EqualFold(strings.TrimSpace(country), china)
}

// parseDuty converts a duty-percentage field ("25", "7.5") to a fraction.
func parseDuty(field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(field))
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Div(hundred), nil
}

// Section301 resolves the Section 301 rate. It applies only to
// Chinese-origin goods. The query is truncated to 8 digits and matched as
// a prefix of each row's normalized code, in table order; the cascade is
// not used. A parse failure on the matched row resolves to zero.
func Section301(code, country string, t *types.TariffTable) decimal.Decimal {
	if !isChina(country) || t == nil {
		return decimal.Zero
	}
	prefix := hts.Normalize(code)
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	if prefix == "" {
		return decimal.Zero
	}
	for _, row := range t.Rows {
		if !strings.HasPrefix(row.NormalizedCode, prefix) {
			continue
		}
		rate, err := parseDuty(row.Get(types.ColumnSection301Duty))
		if err != nil {
			return decimal.Zero
		}
		return rate
	}
	return decimal.Zero
}

// matchOutcome records how a Section 232 lookup concluded, keeping a
// parse failure distinguishable from a genuine absence.
type matchOutcome int

const (
	outcomeMiss matchOutcome = iota
	outcomeMatched
	outcomeUnparseable
)

// Section232 resolves the Section 232 rate against the scenario-specific
// table using the hierarchical cascade. A row whose duty field does not
// parse is treated as no match at that length and the cascade continues.
func Section232(code string, t *types.TariffTable) decimal.Decimal {
	rate, _ := section232(code, t)
	return rate
}

func section232(code string, t *types.TariffTable) (decimal.Decimal, matchOutcome) {
	outcome := outcomeMiss
	rate := decimal.Zero
	_, ok := hts.MatchFunc(hts.Normalize(code), t, func(row types.Row) bool {
		parsed, err := parseDuty(row.Get(types.ColumnSection232Duty))
		if err != nil {
			outcome = outcomeUnparseable
			return false
		}
		rate = parsed
		return true
	})
	if ok {
		return rate, outcomeMatched
	}
	return decimal.Zero, outcome
}

// IEEPA resolves the IEEPA rate: the scenario's China rate for
// Chinese-origin goods, zero otherwise.
func IEEPA(country string, spec types.ScenarioSpec) decimal.Decimal {
	if isChina(country) {
		return spec.Rules.IEEPAChina
	}
	return decimal.Zero
}

// Reciprocal resolves the reciprocal tariff rate: the scenario's China
// rate for Chinese-origin goods, zero otherwise.
func Reciprocal(country string, spec types.ScenarioSpec) decimal.Decimal {
	if isChina(country) {
		return spec.Rules.ReciprocalChina
	}
	return decimal.Zero
}
