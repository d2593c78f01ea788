package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"tariff-cost/core/engine"
	"tariff-cost/core/hts"
	"tariff-cost/core/interpret"
	"tariff-cost/core/tables"
	"tariff-cost/core/types"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	general := &types.TariffTable{Name: "general"}
	general.Rows = append(general.Rows, types.Row{
		Values: map[string]string{
			types.ColumnHTSCode:     "7302.90.00",
			types.ColumnDescription: "Railway track material",
			types.ColumnGeneralDuty: "Free",
		},
		NormalizedCode: hts.Normalize("7302.90.00"),
	})
	s301 := &types.TariffTable{Name: "s301"}
	s232 := &types.TariffTable{Name: "s232"}
	s232.Rows = append(s232.Rows, types.Row{
		Values: map[string]string{
			types.ColumnHTSCode:        "7302",
			types.ColumnSection232Duty: "25",
		},
		NormalizedCode: "7302",
	})

	store, err := tables.NewStore(general, s301, map[types.Scenario]*types.TariffTable{
		types.Scenario2024:        s232,
		types.ScenarioPreMay2025:  s232,
		types.ScenarioPostMay2025: s232,
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	interp := interpret.Func(func(ctx context.Context, dutyText string) (types.Interpretation, error) {
		return types.Interpretation{Explanation: "duty-free entry"}, nil
	})
	return NewServer(engine.New(store, nil, interp), store, "test")
}

func postCalculate(t *testing.T, srv *Server, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/calculate", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHandleCalculate(t *testing.T) {
	srv := testServer(t)

	rec := postCalculate(t, srv, CalculateRequest{HTSCode: "7302.90.00", Country: "China"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var resp CalculateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RequestID == "" {
		t.Error("request id missing")
	}
	if len(resp.Scenarios) != 3 {
		t.Fatalf("scenarios = %d, want 3", len(resp.Scenarios))
	}
	if resp.Scenarios[0].DisplayName != "2024 Tariff" {
		t.Errorf("first scenario %q, want 2024 Tariff", resp.Scenarios[0].DisplayName)
	}

	pre := resp.Scenarios[1]
	if !pre.IsComposite || pre.MetalRate == nil || pre.OtherRate == nil {
		t.Fatalf("pre-May scenario not composite: %+v", pre)
	}
	if !pre.MetalRate.Equal(decimal.RequireFromString("0.45")) {
		t.Errorf("metal rate %s, want 0.45", pre.MetalRate)
	}
}

func TestHandleCalculateWithBases(t *testing.T) {
	srv := testServer(t)
	metal := decimal.RequireFromString("8000")
	other := decimal.RequireFromString("2000")

	rec := postCalculate(t, srv, CalculateRequest{
		HTSCode:    "7302.90.00",
		Country:    "China",
		MetalValue: &metal,
		OtherValue: &other,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var resp CalculateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	pre := resp.Scenarios[1]
	if pre.Landed == nil {
		t.Fatal("landed cost missing for composite scenario with bases")
	}
	// metal duty 0.45*8000 + other duty 1.45*2000 = 3600 + 2900
	if !pre.Landed.DutyAmount.Equal(decimal.RequireFromString("6500")) {
		t.Errorf("duty %s, want 6500", pre.Landed.DutyAmount)
	}
	if !pre.Landed.LandedCost.Equal(decimal.RequireFromString("16500")) {
		t.Errorf("landed cost %s, want 16500", pre.Landed.LandedCost)
	}
}

func TestHandleCalculateUnknownCode(t *testing.T) {
	srv := testServer(t)

	rec := postCalculate(t, srv, CalculateRequest{HTSCode: "9999.99.99", Country: "China"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != "HTS_CODE_NOT_FOUND" {
		t.Errorf("error code %q", resp.Code)
	}
}

func TestHandleCalculateMissingCountry(t *testing.T) {
	srv := testServer(t)

	rec := postCalculate(t, srv, CalculateRequest{HTSCode: "7302.90.00"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestHandleHealthAndTables(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tables", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("tables status %d", rec.Code)
	}
	var infos []TableInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatal(err)
	}
	if len(infos) != 5 {
		t.Errorf("tables = %d, want 5", len(infos))
	}
}
