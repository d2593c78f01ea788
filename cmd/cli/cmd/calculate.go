// Package cmd - calculate command
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tariff-cost/adapters/csvload"
	"tariff-cost/adapters/interpreter"
	"tariff-cost/core/cost"
	"tariff-cost/core/engine"
	"tariff-cost/core/interpret"
	"tariff-cost/core/output"
	"tariff-cost/internal/config"
)

var (
	country      string
	outputFormat string
	value        string
	metalValue   string
	otherValue   string
)

// calculateCmd represents the calculate command
var calculateCmd = &cobra.Command{
	Use:   "calculate <hts-code>",
	Short: "Calculate scenario tariff rates for an HTS code",
	Long: `Resolve each tariff program's rate for the given HTS code and country
of origin, across every regulatory scenario.

With --value (and, for composite scenarios, --metal-value/--other-value)
the command also prints duty amounts and landed cost.

Examples:
  tariff-cost calculate 7302.90.00 --country China
  tariff-cost calculate 7302.90.00 --country China --value 10000
  tariff-cost calculate "7302.90.00" --country China --metal-value 8000 --other-value 2000 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&country, "country", "c", "", "country of origin (required)")
	calculateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	calculateCmd.Flags().StringVar(&value, "value", "", "shipment value for duty amounts")
	calculateCmd.Flags().StringVar(&metalValue, "metal-value", "", "metal-content value share (composite scenarios)")
	calculateCmd.Flags().StringVar(&otherValue, "other-value", "", "non-metal value share (composite scenarios)")
	_ = calculateCmd.MarkFlagRequired("country")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	result, err := eng.Calculate(ctx, engine.Request{
		Code:    args[0],
		Country: country,
	})
	if err != nil {
		return err
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}
	if err := formatter.Render(os.Stdout, result); err != nil {
		return err
	}

	if format == output.FormatCLI {
		if err := printLanded(result); err != nil {
			return err
		}
	}
	return nil
}

// printLanded prints duty amounts for any scenario the flags cover.
func printLanded(result *engine.Result) error {
	bases, haveSingle, havePair, err := parseBases()
	if err != nil {
		return err
	}
	if !haveSingle && !havePair {
		return nil
	}

	for _, sr := range result.Calculation.Ordered() {
		if sr.IsComposite && !havePair {
			fmt.Printf("%s: composite scenario, pass --metal-value and --other-value for duty amounts\n",
				sr.Scenario.DisplayName())
			continue
		}
		if !sr.IsComposite && !haveSingle {
			continue
		}
		landed, err := cost.Compute(sr, bases)
		if err != nil {
			return err
		}
		if sr.IsComposite {
			fmt.Printf("%s: metal duty %s, other duty %s, total duty %s, landed cost %s\n",
				sr.Scenario.DisplayName(),
				landed.MetalDuty.StringFixed(2),
				landed.OtherDuty.StringFixed(2),
				landed.DutyAmount.StringFixed(2),
				landed.LandedCost.StringFixed(2))
		} else {
			fmt.Printf("%s: duty %s, landed cost %s\n",
				sr.Scenario.DisplayName(),
				landed.DutyAmount.StringFixed(2),
				landed.LandedCost.StringFixed(2))
		}
	}
	return nil
}

func parseBases() (bases cost.Bases, haveSingle, havePair bool, err error) {
	if value != "" {
		bases.Value, err = decimal.NewFromString(value)
		if err != nil {
			return bases, false, false, fmt.Errorf("invalid --value: %w", err)
		}
		haveSingle = true
	}
	if metalValue != "" || otherValue != "" {
		if metalValue == "" || otherValue == "" {
			return bases, false, false, fmt.Errorf("--metal-value and --other-value must be given together")
		}
		bases.MetalValue, err = decimal.NewFromString(metalValue)
		if err != nil {
			return bases, false, false, fmt.Errorf("invalid --metal-value: %w", err)
		}
		bases.OtherValue, err = decimal.NewFromString(otherValue)
		if err != nil {
			return bases, false, false, fmt.Errorf("invalid --other-value: %w", err)
		}
		havePair = true
	}
	return bases, haveSingle, havePair, nil
}

// buildEngine loads the scenario catalog and datasets and wires the
// configured interpreter.
func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	catalog, err := config.LoadScenarios(cfg.Data.ScenariosFile)
	if err != nil {
		return nil, err
	}

	store, err := csvload.LoadStore(cfg.Data, catalog)
	if err != nil {
		return nil, err
	}

	var interp interpret.Interpreter
	if cfg.Interpreter.Endpoint != "" {
		interp = interpreter.NewClient(cfg.Interpreter.Endpoint,
			time.Duration(cfg.Interpreter.TimeoutSeconds)*time.Second)
	} else {
		interp = interpreter.NewHeuristic()
	}

	return engine.New(store, catalog, interp), nil
}
