// Package cmd - tables command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tariff-cost/adapters/csvload"
	"tariff-cost/internal/config"
)

// tablesCmd lists the loaded tariff datasets
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the loaded tariff tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		catalog, err := config.LoadScenarios(cfg.Data.ScenariosFile)
		if err != nil {
			return err
		}
		store, err := csvload.LoadStore(cfg.Data, catalog)
		if err != nil {
			return err
		}

		for _, t := range store.Tables() {
			fmt.Printf("%-40s %6d rows\n", t.Name, t.Len())
		}
		return nil
	},
}
