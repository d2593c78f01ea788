// Package interpret defines the duty-text interpretation collaborator.
//
// The general table carries free-text duty descriptions; an external
// classifier converts them to a structured rate. The engine treats that
// classifier as opaque: any non-negative rate is accepted, and
// RequiresMoreInfo passes through unchanged for user disclosure.
package interpret

import (
	"context"

	"go.uber.org/zap"

	"tariff-cost/core/types"
	"tariff-cost/internal/logging"
)

// Interpreter classifies a free-text duty description into a decimal rate.
type Interpreter interface {
	Interpret(ctx context.Context, dutyText string) (types.Interpretation, error)
}

// Func adapts a plain function to the Interpreter interface.
type Func func(ctx context.Context, dutyText string) (types.Interpretation, error)

// Interpret implements Interpreter
func (f Func) Interpret(ctx context.Context, dutyText string) (types.Interpretation, error) {
	return f(ctx, dutyText)
}

// WithFallback wraps an interpreter so a collaborator failure degrades to
// a safe default (rate zero, manual review required) instead of failing
// the calculation. A negative rate from the collaborator is treated the
// same way.
func WithFallback(inner Interpreter) Interpreter {
	return &fallback{inner: inner}
}

type fallback struct {
	inner Interpreter
}

func (f *fallback) Interpret(ctx context.Context, dutyText string) (types.Interpretation, error) {
	if f.inner == nil {
		return types.Interpretation{
			RequiresMoreInfo: true,
			Explanation:      "no duty rate interpreter configured; manual review required",
		}, nil
	}
	out, err := f.inner.Interpret(ctx, dutyText)
	if err != nil {
		logging.Warn("duty interpretation failed, using zero-rate default", zap.Error(err))
		return types.Interpretation{
			RequiresMoreInfo: true,
			Explanation:      "duty rate interpretation failed (" + err.Error() + "); manual review required",
		}, nil
	}
	if out.DecimalRate.IsNegative() {
		logging.Warn("duty interpretation returned a negative rate, using zero-rate default",
			zap.String("rate", out.DecimalRate.String()))
		return types.Interpretation{
			RequiresMoreInfo: true,
			Explanation:      "duty rate interpretation returned a negative rate; manual review required",
		}, nil
	}
	return out, nil
}
