// Package types defines the data model shared across the tariff engine.
package types

// Column names used by the bundled tariff datasets.
const (
	// ColumnHTSCode is the raw HTS code column present in every table
	ColumnHTSCode = "HTS_Code"

	// ColumnDescription is the product description column of the general table
	ColumnDescription = "Description"

	// ColumnGeneralDuty is the free-text duty column of the general table
	ColumnGeneralDuty = "General Rate of Duty"

	// ColumnSection301Duty is the duty percentage column of the Section 301 table
	ColumnSection301Duty = "Section 301 Tariff %"

	// ColumnSection232Duty is the duty percentage column of the Section 232 tables
	ColumnSection232Duty = "Section 232 Duty"
)

// Row is a single record from a tariff table: the original column values
// plus the normalized code computed once at load time.
type Row struct {
	// Values maps column name to the raw cell value
	Values map[string]string `json:"values"`

	// NormalizedCode is the digit-only form of the row's HTS code
	NormalizedCode string `json:"normalized_code"`
}

// Get returns the raw value of a column, or "" if absent
func (r Row) Get(column string) string {
	return r.Values[column]
}

// TariffTable is an ordered collection of rows from one source file.
// Rows keep their original file order and are never mutated after load.
type TariffTable struct {
	// Name identifies the table (usually the source file name)
	Name string `json:"name"`

	// Columns lists the header columns in file order
	Columns []string `json:"columns"`

	// Rows holds the records in file order
	Rows []Row `json:"rows"`
}

// Len returns the number of rows
func (t *TariffTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
