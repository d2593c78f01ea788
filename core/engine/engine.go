// Package engine orchestrates a full tariff calculation: general-table
// lookup, duty-text interpretation, and scenario composition.
package engine

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tariff-cost/core/compose"
	"tariff-cost/core/hts"
	"tariff-cost/core/interpret"
	"tariff-cost/core/tables"
	"tariff-cost/core/types"
	"tariff-cost/internal/errors"
	"tariff-cost/internal/logging"
)

// Engine runs calculations against one immutable dataset store.
type Engine struct {
	store       *tables.Store
	catalog     types.Catalog
	interpreter interpret.Interpreter
}

// Request identifies one calculation.
type Request struct {
	// Code is the raw HTS code as entered
	Code string `json:"code"`

	// Country is the country of origin
	Country string `json:"country"`
}

// Result is a completed calculation.
type Result struct {
	// Code is the raw HTS code as entered
	Code string `json:"code"`

	// NormalizedCode is the digit-only form used for matching
	NormalizedCode string `json:"normalized_code"`

	// Country is the country of origin
	Country string `json:"country"`

	// Description is the matched product description from the general table
	Description string `json:"description"`

	// DutyText is the raw duty description that was interpreted
	DutyText string `json:"duty_text"`

	// GeneralRate is the interpreted general duty rate
	GeneralRate decimal.Decimal `json:"general_rate"`

	// Interpretation is the collaborator's full classification outcome
	Interpretation types.Interpretation `json:"interpretation"`

	// Calculation holds the per-scenario composed rates
	Calculation *types.CalculationResult `json:"calculation"`

	// Warnings lists conditions the user should see (e.g. the duty text
	// needs manual review); they never change the arithmetic
	Warnings []string `json:"warnings,omitempty"`
}

// New creates an engine. A nil catalog takes the built-in defaults; a nil
// interpreter degrades every duty text to the manual-review default.
func New(store *tables.Store, catalog types.Catalog, interpreter interpret.Interpreter) *Engine {
	if catalog == nil {
		catalog = types.DefaultCatalog()
	}
	return &Engine{
		store:       store,
		catalog:     catalog,
		interpreter: interpret.WithFallback(interpreter),
	}
}

// Calculate runs one calculation. The only blocking failure is an HTS code
// absent from the general table; program-specific lookup misses resolve to
// zero inside the composer, and an interpretation failure degrades to a
// zero rate with a warning.
func (e *Engine) Calculate(ctx context.Context, req Request) (*Result, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, errors.Input("hts code is required")
	}
	country := strings.TrimSpace(req.Country)
	if country == "" {
		return nil, errors.Input("country of origin is required")
	}

	normalized := hts.Normalize(code)
	if normalized == "" {
		return nil, errors.Input("hts code contains no digits")
	}

	row, ok := hts.Match(normalized, e.store.General())
	if !ok {
		return nil, errors.NotFound("hts code", req.Code)
	}

	dutyText := row.Get(types.ColumnGeneralDuty)
	interpretation, err := e.interpreter.Interpret(ctx, dutyText)
	if err != nil {
		// WithFallback absorbs collaborator failures; reaching here means
		// the engine was built without it.
		return nil, errors.Interpreter("interpret duty text", err)
	}

	result := &Result{
		Code:           code,
		NormalizedCode: normalized,
		Country:        country,
		Description:    row.Get(types.ColumnDescription),
		DutyText:       dutyText,
		GeneralRate:    interpretation.DecimalRate,
		Interpretation: interpretation,
	}
	if interpretation.RequiresMoreInfo {
		result.Warnings = append(result.Warnings, interpretation.Explanation)
	}

	result.Calculation = compose.Compose(normalized, country, interpretation.DecimalRate, e.store, e.catalog)

	logging.Info("calculation complete",
		zap.String("code", normalized),
		zap.String("country", country),
		zap.String("general_rate", interpretation.DecimalRate.String()),
		zap.Bool("requires_more_info", interpretation.RequiresMoreInfo))
	return result, nil
}
