// Package csvload loads tariff tables from CSV files.
//
// The core only requires that each row be reducible to a normalized code
// plus its raw column values; everything about file location and format is
// this adapter's concern.
package csvload

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"tariff-cost/core/hts"
	"tariff-cost/core/tables"
	"tariff-cost/core/types"
	"tariff-cost/internal/config"
	"tariff-cost/internal/errors"
	"tariff-cost/internal/logging"
)

// LoadTable reads one CSV file into a TariffTable. The first record is the
// header; codeColumn names the raw HTS code column, whose normalized form
// is computed once per row. Rows with fewer fields than the header keep
// the columns they have.
func LoadTable(path, codeColumn string) (*types.TariffTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Dataset("open tariff table", err)
	}
	defer f.Close()

	return ReadTable(f, filepath.Base(path), codeColumn)
}

// ReadTable parses CSV content from a reader.
func ReadTable(r io.Reader, name, codeColumn string) (*types.TariffTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Dataset("read tariff table header", err)
	}

	codeIdx := -1
	for i, col := range header {
		if col == codeColumn {
			codeIdx = i
			break
		}
	}
	if codeIdx < 0 {
		return nil, errors.Newf(errors.TypeDataset, "table %s has no %q column", name, codeColumn)
	}

	table := &types.TariffTable{
		Name:    name,
		Columns: append([]string(nil), header...),
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Dataset("read tariff table row", err)
		}
		values := make(map[string]string, len(header))
		for i, field := range record {
			if i >= len(header) {
				break
			}
			values[header[i]] = field
		}
		table.Rows = append(table.Rows, types.Row{
			Values:         values,
			NormalizedCode: hts.Normalize(values[codeColumn]),
		})
	}

	logging.Debug("loaded tariff table",
		zap.String("table", name),
		zap.Int("rows", len(table.Rows)))
	return table, nil
}

// LoadStore loads every configured dataset and assembles the immutable
// store handle. Section 232 table files come from the scenario catalog.
func LoadStore(data config.DataConfig, catalog types.Catalog) (*tables.Store, error) {
	codeColumn := data.CodeColumn
	if codeColumn == "" {
		codeColumn = types.ColumnHTSCode
	}

	general, err := LoadTable(filepath.Join(data.Directory, data.GeneralFile), codeColumn)
	if err != nil {
		return nil, err
	}
	section301, err := LoadTable(filepath.Join(data.Directory, data.Section301File), codeColumn)
	if err != nil {
		return nil, err
	}

	section232 := make(map[types.Scenario]*types.TariffTable, len(catalog))
	for _, sc := range types.Scenarios() {
		spec, ok := catalog[sc]
		if !ok {
			return nil, errors.Newf(errors.TypeConfig, "scenario %s missing from catalog", sc)
		}
		t, err := LoadTable(filepath.Join(data.Directory, spec.TableFile), codeColumn)
		if err != nil {
			return nil, err
		}
		section232[sc] = t
	}

	store, err := tables.NewStore(general, section301, section232)
	if err != nil {
		return nil, err
	}

	logging.Info("tariff datasets loaded",
		zap.Int("general_rows", general.Len()),
		zap.Int("section301_rows", section301.Len()),
		zap.Int("scenarios", len(section232)))
	return store, nil
}
