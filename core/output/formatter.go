// Package output renders calculation results for humans and machines.
package output

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"tariff-cost/core/engine"
	"tariff-cost/core/types"
	"tariff-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal layout
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *engine.Result) error
}

// New returns a formatter for the requested format.
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &cliFormatter{}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	}
	return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", format)
}

var hundred = decimal.NewFromInt(100)

// Percent renders a fractional rate for display ("0.25" -> "25.00%").
// Display formatting is the only place rates leave fractional form.
func Percent(rate decimal.Decimal) string {
	return rate.Mul(hundred).StringFixed(2) + "%"
}

type cliFormatter struct{}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, result *engine.Result) error {
	fmt.Fprintf(w, "HTS Code:    %s (normalized %s)\n", result.Code, result.NormalizedCode)
	fmt.Fprintf(w, "Country:     %s\n", result.Country)
	if result.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", result.Description)
	}
	fmt.Fprintf(w, "Duty text:   %s\n", result.DutyText)
	fmt.Fprintf(w, "General:     %s (%s)\n", Percent(result.GeneralRate), result.Interpretation.Explanation)
	fmt.Fprintln(w)

	for _, sr := range result.Calculation.Ordered() {
		fmt.Fprintf(w, "%s\n", sr.Scenario.DisplayName())
		for _, c := range types.Components() {
			fmt.Fprintf(w, "  %-14s %s\n", string(c)+":", Percent(sr.Component(c)))
		}
		if sr.IsComposite {
			fmt.Fprintf(w, "  Metal component: %s\n", Percent(sr.MetalRate))
			fmt.Fprintf(w, "  Other component: %s\n", Percent(sr.OtherRate))
		} else {
			fmt.Fprintf(w, "  Total:           %s\n", Percent(sr.TotalRate))
		}
		fmt.Fprintln(w)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	return nil
}

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

func (f *jsonFormatter) Render(w io.Writer, result *engine.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Internal("encode result", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
