package compose

import (
	"testing"

	"github.com/shopspring/decimal"

	"tariff-cost/core/hts"
	"tariff-cost/core/tables"
	"tariff-cost/core/types"
)

func dutyTable(name, dutyColumn string, rows ...[2]string) *types.TariffTable {
	t := &types.TariffTable{Name: name, Columns: []string{types.ColumnHTSCode, dutyColumn}}
	for _, r := range rows {
		t.Rows = append(t.Rows, types.Row{
			Values: map[string]string{
				types.ColumnHTSCode: r[0],
				dutyColumn:          r[1],
			},
			NormalizedCode: hts.Normalize(r[0]),
		})
	}
	return t
}

// storeWith builds a store where every scenario shares the same
// Section 232 table.
func storeWith(t *testing.T, s301 *types.TariffTable, s232 *types.TariffTable) *tables.Store {
	t.Helper()
	general := dutyTable("general", types.ColumnGeneralDuty)
	s232Tables := map[types.Scenario]*types.TariffTable{
		types.Scenario2024:        s232,
		types.ScenarioPreMay2025:  s232,
		types.ScenarioPostMay2025: s232,
	}
	store, err := tables.NewStore(general, s301, s232Tables)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComposeReturnsAllScenariosInOrder(t *testing.T) {
	store := storeWith(t,
		dutyTable("s301", types.ColumnSection301Duty),
		dutyTable("s232", types.ColumnSection232Duty))

	result := Compose("73029000", "Vietnam", decimal.Zero, store, types.DefaultCatalog())

	ordered := result.Ordered()
	if len(ordered) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(ordered))
	}
	want := []types.Scenario{types.Scenario2024, types.ScenarioPreMay2025, types.ScenarioPostMay2025}
	for i, sr := range ordered {
		if sr.Scenario != want[i] {
			t.Errorf("position %d: got %s, want %s", i, sr.Scenario, want[i])
		}
	}
}

func TestComposeNonCompositeInvariant(t *testing.T) {
	// No Section 232 match anywhere: every scenario is non-composite and
	// the total is general+s301+ieepa+reciprocal.
	store := storeWith(t,
		dutyTable("s301", types.ColumnSection301Duty, [2]string{"7302.90.00", "25"}),
		dutyTable("s232", types.ColumnSection232Duty))
	general := dec("0.05")

	result := Compose("73029000", "China", general, store, types.DefaultCatalog())

	for _, sr := range result.Ordered() {
		if sr.IsComposite {
			t.Errorf("%s: composite without a Section 232 rate", sr.Scenario)
		}
		wantTotal := general.
			Add(sr.Component(types.ComponentSection301)).
			Add(sr.Component(types.ComponentIEEPA)).
			Add(sr.Component(types.ComponentReciprocal))
		if !sr.TotalRate.Equal(wantTotal) {
			t.Errorf("%s: total %s, want %s", sr.Scenario, sr.TotalRate, wantTotal)
		}
	}

	// Spot-check the pre-May 2025 blend: 0.05 + 0.25 + 0.20 + 1.25.
	pre := result.Scenarios[types.ScenarioPreMay2025]
	if !pre.TotalRate.Equal(dec("1.75")) {
		t.Errorf("pre-May total %s, want 1.75", pre.TotalRate)
	}
}

func TestComposeCompositeInvariant(t *testing.T) {
	// Section 232 applies: the metal component excludes reciprocal and the
	// other component excludes Section 232.
	store := storeWith(t,
		dutyTable("s301", types.ColumnSection301Duty, [2]string{"7302.90.00", "10"}),
		dutyTable("s232", types.ColumnSection232Duty, [2]string{"7302", "25"}))
	general := dec("0.02")

	result := Compose("7302900010", "China", general, store, types.DefaultCatalog())

	for _, sr := range result.Ordered() {
		if !sr.IsComposite {
			t.Fatalf("%s: expected composite", sr.Scenario)
		}
		base := general.
			Add(sr.Component(types.ComponentSection301)).
			Add(sr.Component(types.ComponentIEEPA))
		if !sr.MetalRate.Equal(base.Add(sr.Component(types.ComponentSection232))) {
			t.Errorf("%s: metal rate %s includes reciprocal?", sr.Scenario, sr.MetalRate)
		}
		if !sr.OtherRate.Equal(base.Add(sr.Component(types.ComponentReciprocal))) {
			t.Errorf("%s: other rate %s includes section 232?", sr.Scenario, sr.OtherRate)
		}
	}
}

func TestComposeEndToEndExample(t *testing.T) {
	// Code 7302.90.00 from China with general rate 0 and a Section 232
	// heading entry for 7302 at 25%: pre-May 2025 must split into
	// metal 0+0+0.20+0.25 and other 0+0+0.20+1.25.
	store := storeWith(t,
		dutyTable("s301", types.ColumnSection301Duty),
		dutyTable("s232", types.ColumnSection232Duty, [2]string{"7302", "25"}))

	result := Compose(hts.Normalize("7302.90.00"), "China", decimal.Zero, store, types.DefaultCatalog())

	pre := result.Scenarios[types.ScenarioPreMay2025]
	if !pre.IsComposite {
		t.Fatal("pre-May 2025 should be composite")
	}
	if !pre.MetalRate.Equal(dec("0.45")) {
		t.Errorf("metal rate %s, want 0.45", pre.MetalRate)
	}
	if !pre.OtherRate.Equal(dec("1.45")) {
		t.Errorf("other rate %s, want 1.45", pre.OtherRate)
	}

	// 2024: composite but IEEPA and reciprocal are both zero.
	y2024 := result.Scenarios[types.Scenario2024]
	if !y2024.MetalRate.Equal(dec("0.25")) {
		t.Errorf("2024 metal rate %s, want 0.25", y2024.MetalRate)
	}
	if !y2024.OtherRate.Equal(dec("0")) {
		t.Errorf("2024 other rate %s, want 0", y2024.OtherRate)
	}

	// Post-May 2025: other side carries the 0.10 reciprocal rate.
	post := result.Scenarios[types.ScenarioPostMay2025]
	if !post.OtherRate.Equal(dec("0.30")) {
		t.Errorf("post-May other rate %s, want 0.30", post.OtherRate)
	}
}

func TestComposeGeneralRateReusedAcrossScenarios(t *testing.T) {
	store := storeWith(t,
		dutyTable("s301", types.ColumnSection301Duty),
		dutyTable("s232", types.ColumnSection232Duty))
	general := dec("0.033")

	result := Compose("73029000", "Japan", general, store, types.DefaultCatalog())

	for _, sr := range result.Ordered() {
		if !sr.Component(types.ComponentGeneral).Equal(general) {
			t.Errorf("%s: general %s, want %s", sr.Scenario, sr.Component(types.ComponentGeneral), general)
		}
	}
}
