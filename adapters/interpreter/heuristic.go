// Package interpreter - Local heuristic duty-text classifier
package interpreter

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tariff-cost/core/types"
)

var (
	percentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	hundred   = decimal.NewFromInt(100)
)

// Heuristic classifies the common HTS duty-text shapes without a network
// call: "Free" means zero, a lone ad valorem percentage is taken as-is,
// and anything else (specific or compound duties like "2.5¢/kg") is
// flagged for manual review. It is the default interpreter when no
// service endpoint is configured.
type Heuristic struct{}

// NewHeuristic creates a heuristic interpreter.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Interpret implements interpret.Interpreter.
func (h *Heuristic) Interpret(_ context.Context, dutyText string) (types.Interpretation, error) {
	text := strings.TrimSpace(dutyText)

	if text == "" {
		return types.Interpretation{
			RequiresMoreInfo: true,
			Explanation:      "duty description is empty; manual review required",
		}, nil
	}

	if strings.EqualFold(text, "free") {
		return types.Interpretation{
			Explanation: "duty-free entry",
		}, nil
	}

	m := percentRe.FindStringSubmatch(text)
	if m == nil {
		return types.Interpretation{
			RequiresMoreInfo: true,
			Explanation:      "no ad valorem percentage recognized in " + strconv.Quote(text) + "; manual review required",
		}, nil
	}

	pct, err := decimal.NewFromString(m[1])
	if err != nil {
		return types.Interpretation{
			RequiresMoreInfo: true,
			Explanation:      "unparseable percentage in " + strconv.Quote(text) + "; manual review required",
		}, nil
	}
	rate := pct.Div(hundred)

	// A bare "X%" is a clean ad valorem rate. Any surrounding text means a
	// specific or compound duty: keep the ad valorem part but flag it.
	if strings.TrimSpace(strings.Replace(text, m[0], "", 1)) != "" {
		return types.Interpretation{
			DecimalRate:      rate,
			RequiresMoreInfo: true,
			Explanation:      "compound duty " + strconv.Quote(text) + "; only the ad valorem part is applied",
		}, nil
	}

	return types.Interpretation{
		DecimalRate: rate,
		Explanation: "ad valorem rate " + m[0],
	}, nil
}
