// Package cmd provides the CLI commands for tariff-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tariff-cost/internal/config"
	"tariff-cost/internal/logging"
)

var (
	cfgFile string
	dataDir string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tariff-cost",
	Short: "Estimate import duty rates for HTS codes",
	Long: `tariff-cost estimates import duty rates for a product and country of
origin by combining independently sourced tariff schedules (general rates,
Section 301, Section 232, IEEPA, reciprocal) into scenario-based composite
rates.

Examples:
  tariff-cost calculate 7302.90.00 --country China
  tariff-cost calculate 7302.90.00 --country China --metal-value 8000 --other-value 2000
  tariff-cost tables`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tariff-cost.json)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "tariff dataset directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if dataDir != "" {
		cfg.Data.Directory = dataDir
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tariff-cost version 0.1.0")
	},
}
