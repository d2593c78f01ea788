// Package api - Request and response types
package api

import (
	"github.com/shopspring/decimal"
)

// CalculateRequest is the body of POST /calculate.
type CalculateRequest struct {
	// HTSCode is the raw HTS code, any punctuation accepted
	HTSCode string `json:"hts_code"`

	// Country is the country of origin
	Country string `json:"country"`

	// Value is the optional shipment value for duty amounts
	// (non-composite scenarios)
	Value *decimal.Decimal `json:"value,omitempty"`

	// MetalValue is the optional metal-content value share
	// (composite scenarios)
	MetalValue *decimal.Decimal `json:"metal_value,omitempty"`

	// OtherValue is the optional non-metal value share
	// (composite scenarios)
	OtherValue *decimal.Decimal `json:"other_value,omitempty"`
}

// CalculateResponse is the body of a successful calculation.
type CalculateResponse struct {
	RequestID        string             `json:"request_id"`
	Code             string             `json:"code"`
	NormalizedCode   string             `json:"normalized_code"`
	Country          string             `json:"country"`
	Description      string             `json:"description,omitempty"`
	DutyText         string             `json:"duty_text"`
	GeneralRate      decimal.Decimal    `json:"general_rate"`
	RequiresMoreInfo bool               `json:"requires_more_info"`
	Explanation      string             `json:"explanation,omitempty"`
	Scenarios        []ScenarioResponse `json:"scenarios"`
	Warnings         []string           `json:"warnings,omitempty"`
}

// ScenarioResponse is one scenario's composed rates, in display order.
type ScenarioResponse struct {
	Key         string                     `json:"key"`
	DisplayName string                     `json:"display_name"`
	Components  map[string]decimal.Decimal `json:"components"`
	IsComposite bool                       `json:"is_composite"`

	// TotalRate is set when the scenario is not composite
	TotalRate *decimal.Decimal `json:"total_rate,omitempty"`

	// MetalRate/OtherRate are set when the scenario is composite
	MetalRate *decimal.Decimal `json:"metal_rate,omitempty"`
	OtherRate *decimal.Decimal `json:"other_rate,omitempty"`

	// Landed is present when the request carried base values
	Landed *LandedResponse `json:"landed,omitempty"`
}

// LandedResponse is a scenario's duty amounts and landed cost.
type LandedResponse struct {
	MetalDuty  *decimal.Decimal `json:"metal_duty,omitempty"`
	OtherDuty  *decimal.Decimal `json:"other_duty,omitempty"`
	DutyAmount decimal.Decimal  `json:"duty_amount"`
	LandedCost decimal.Decimal  `json:"landed_cost"`
}

// TableInfo describes one loaded tariff table.
type TableInfo struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}
