// Package api - HTTP handler for tariff calculation
// The handler wraps the engine; it contains no rate logic itself.
package api

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tariff-cost/core/cost"
	"tariff-cost/core/engine"
	"tariff-cost/core/types"
	"tariff-cost/internal/errors"
	"tariff-cost/internal/logging"
)

// Handler handles calculation requests.
type Handler struct {
	engine *engine.Engine
}

// NewHandler creates a handler around an engine.
func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{engine: eng}
}

// HandleCalculate handles POST /calculate.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r.Context())

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.engine.Calculate(r.Context(), engine.Request{
		Code:    req.HTSCode,
		Country: req.Country,
	})
	if err != nil {
		status := http.StatusInternalServerError
		code := "CALCULATION_ERROR"
		switch {
		case errors.IsType(err, errors.TypeInput):
			status = http.StatusBadRequest
			code = "INVALID_INPUT"
		case errors.IsType(err, errors.TypeNotFound):
			status = http.StatusNotFound
			code = "HTS_CODE_NOT_FOUND"
		}
		writeError(w, requestID, code, err.Error(), status)
		return
	}

	resp, err := buildResponse(requestID, result, &req)
	if err != nil {
		writeError(w, requestID, "INVALID_INPUT", err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, resp, http.StatusOK)
}

// buildResponse maps an engine result to the wire shape, attaching duty
// amounts for any scenario the request supplied base values for.
func buildResponse(requestID string, result *engine.Result, req *CalculateRequest) (*CalculateResponse, error) {
	resp := &CalculateResponse{
		RequestID:        requestID,
		Code:             result.Code,
		NormalizedCode:   result.NormalizedCode,
		Country:          result.Country,
		Description:      result.Description,
		DutyText:         result.DutyText,
		GeneralRate:      result.GeneralRate,
		RequiresMoreInfo: result.Interpretation.RequiresMoreInfo,
		Explanation:      result.Interpretation.Explanation,
		Warnings:         result.Warnings,
	}

	bases, haveSingle, havePair := basesFrom(req)

	for _, sr := range result.Calculation.Ordered() {
		scenario := ScenarioResponse{
			Key:         sr.Scenario.Key(),
			DisplayName: sr.Scenario.DisplayName(),
			Components:  make(map[string]decimal.Decimal, len(sr.Components)),
			IsComposite: sr.IsComposite,
		}
		for c, rate := range sr.Components {
			scenario.Components[string(c)] = rate
		}
		if sr.IsComposite {
			metal, other := sr.MetalRate, sr.OtherRate
			scenario.MetalRate = &metal
			scenario.OtherRate = &other
		} else {
			total := sr.TotalRate
			scenario.TotalRate = &total
		}

		if (sr.IsComposite && havePair) || (!sr.IsComposite && haveSingle) {
			landed, err := cost.Compute(sr, bases)
			if err != nil {
				return nil, err
			}
			scenario.Landed = landedResponse(sr, landed)
		}

		resp.Scenarios = append(resp.Scenarios, scenario)
	}

	return resp, nil
}

func basesFrom(req *CalculateRequest) (bases cost.Bases, haveSingle, havePair bool) {
	if req.Value != nil {
		bases.Value = *req.Value
		haveSingle = true
	}
	if req.MetalValue != nil && req.OtherValue != nil {
		bases.MetalValue = *req.MetalValue
		bases.OtherValue = *req.OtherValue
		havePair = true
	}
	return bases, haveSingle, havePair
}

func landedResponse(sr types.ScenarioResult, landed cost.Landed) *LandedResponse {
	out := &LandedResponse{
		DutyAmount: landed.DutyAmount,
		LandedCost: landed.LandedCost,
	}
	if sr.IsComposite {
		metal, other := landed.MetalDuty, landed.OtherDuty
		out.MetalDuty = &metal
		out.OtherDuty = &other
	}
	return out
}

func writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	writeJSON(w, ErrorResponse{
		RequestID: requestID,
		Code:      code,
		Message:   message,
	}, status)
}
