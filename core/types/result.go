// Package types - Calculation result types
package types

import "github.com/shopspring/decimal"

// Component names one tariff program's contribution to total duty.
type Component string

const (
	ComponentGeneral    Component = "General Rate"
	ComponentSection301 Component = "Section 301"
	ComponentIEEPA      Component = "IEEPA"
	ComponentSection232 Component = "Section 232"
	ComponentReciprocal Component = "Reciprocal"
)

// Components returns all components in display order.
func Components() []Component {
	return []Component{
		ComponentGeneral,
		ComponentSection301,
		ComponentIEEPA,
		ComponentSection232,
		ComponentReciprocal,
	}
}

// ScenarioResult is the composed outcome for one scenario. All rates are
// decimal fractions (0.25 means 25%).
type ScenarioResult struct {
	// Scenario is the scenario this result belongs to
	Scenario Scenario `json:"scenario"`

	// Components maps each program to its resolved rate
	Components map[Component]decimal.Decimal `json:"components"`

	// IsComposite is true when Section 232 applies and duty splits between
	// a metal value component and an other value component
	IsComposite bool `json:"is_composite"`

	// TotalRate is the blended rate; set only when IsComposite is false
	TotalRate decimal.Decimal `json:"total_rate"`

	// MetalRate is the metal-content rate; set only when IsComposite is true
	MetalRate decimal.Decimal `json:"metal_rate"`

	// OtherRate is the non-metal rate; set only when IsComposite is true
	OtherRate decimal.Decimal `json:"other_rate"`
}

// Component returns one program's resolved rate.
func (r ScenarioResult) Component(c Component) decimal.Decimal {
	return r.Components[c]
}

// CalculationResult holds one ScenarioResult per fixed scenario.
type CalculationResult struct {
	// Scenarios maps scenario identity to its result
	Scenarios map[Scenario]ScenarioResult `json:"scenarios"`
}

// Ordered returns the scenario results in fixed display order.
func (r *CalculationResult) Ordered() []ScenarioResult {
	out := make([]ScenarioResult, 0, len(r.Scenarios))
	for _, sc := range Scenarios() {
		if sr, ok := r.Scenarios[sc]; ok {
			out = append(out, sr)
		}
	}
	return out
}

// Interpretation is the structured outcome of classifying a free-text duty
// description into a decimal rate. It is produced by an external
// collaborator and passed through unchanged.
type Interpretation struct {
	// DecimalRate is the classified ad valorem rate as a fraction
	DecimalRate decimal.Decimal `json:"decimal_rate"`

	// RequiresMoreInfo signals the duty text could not be fully classified
	// and the result needs manual review
	RequiresMoreInfo bool `json:"requires_more_info"`

	// Explanation describes how the rate was derived
	Explanation string `json:"explanation"`
}
