// Package cost computes duty amounts and landed cost from composed rates.
//
// This is the only arithmetic downstream of the composer: each component
// rate multiplied by its user-supplied monetary base, unrounded until
// display.
package cost

import (
	"github.com/shopspring/decimal"

	"tariff-cost/core/types"
	"tariff-cost/internal/errors"
)

// Bases carries the user-supplied monetary base values. Non-composite
// scenarios use Value; composite scenarios use the MetalValue/OtherValue
// pair.
type Bases struct {
	// Value is the full shipment value
	Value decimal.Decimal `json:"value"`

	// MetalValue is the metal-content value share
	MetalValue decimal.Decimal `json:"metal_value"`

	// OtherValue is the non-metal value share
	OtherValue decimal.Decimal `json:"other_value"`
}

// Landed is a scenario's duty amounts and landed cost.
type Landed struct {
	// Scenario is the scenario this breakdown belongs to
	Scenario types.Scenario `json:"scenario"`

	// MetalDuty is the duty on the metal value share (composite only)
	MetalDuty decimal.Decimal `json:"metal_duty"`

	// OtherDuty is the duty on the non-metal value share (composite only)
	OtherDuty decimal.Decimal `json:"other_duty"`

	// DutyAmount is the total duty owed
	DutyAmount decimal.Decimal `json:"duty_amount"`

	// LandedCost is base value plus duty
	LandedCost decimal.Decimal `json:"landed_cost"`
}

// Compute multiplies a scenario's rates by the matching base values.
// A composite scenario requires the metal/other pair; a non-composite
// scenario requires Value.
func Compute(sr types.ScenarioResult, bases Bases) (Landed, error) {
	out := Landed{Scenario: sr.Scenario}

	if sr.IsComposite {
		if bases.MetalValue.IsNegative() || bases.OtherValue.IsNegative() {
			return Landed{}, errors.Input("metal and other values must be non-negative")
		}
		out.MetalDuty = sr.MetalRate.Mul(bases.MetalValue)
		out.OtherDuty = sr.OtherRate.Mul(bases.OtherValue)
		out.DutyAmount = out.MetalDuty.Add(out.OtherDuty)
		out.LandedCost = bases.MetalValue.Add(bases.OtherValue).Add(out.DutyAmount)
		return out, nil
	}

	if bases.Value.IsNegative() {
		return Landed{}, errors.Input("value must be non-negative")
	}
	out.DutyAmount = sr.TotalRate.Mul(bases.Value)
	out.LandedCost = bases.Value.Add(out.DutyAmount)
	return out, nil
}
