package interpreter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestHeuristicFree(t *testing.T) {
	out, err := NewHeuristic().Interpret(context.Background(), "Free")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if !out.DecimalRate.IsZero() || out.RequiresMoreInfo {
		t.Errorf("Free should be a confident zero rate: %+v", out)
	}
}

func TestHeuristicAdValorem(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2.5%", "0.025"},
		{"25%", "0.25"},
		{"  7.5 %  ", "0.075"},
	}
	for _, tc := range cases {
		out, err := NewHeuristic().Interpret(context.Background(), tc.in)
		if err != nil {
			t.Fatalf("Interpret(%q): %v", tc.in, err)
		}
		if !out.DecimalRate.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("Interpret(%q) rate = %s, want %s", tc.in, out.DecimalRate, tc.want)
		}
		if out.RequiresMoreInfo {
			t.Errorf("Interpret(%q) flagged for review", tc.in)
		}
	}
}

func TestHeuristicCompoundDutyFlagsReview(t *testing.T) {
	out, err := NewHeuristic().Interpret(context.Background(), "2.5% + 10 cents/kg")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if !out.RequiresMoreInfo {
		t.Error("compound duty must require more info")
	}
	if !out.DecimalRate.Equal(decimal.RequireFromString("0.025")) {
		t.Errorf("ad valorem part %s, want 0.025", out.DecimalRate)
	}
}

func TestHeuristicUnrecognizedFlagsReview(t *testing.T) {
	for _, in := range []string{"", "10 cents/kg", "see chapter note 4"} {
		out, err := NewHeuristic().Interpret(context.Background(), in)
		if err != nil {
			t.Fatalf("Interpret(%q): %v", in, err)
		}
		if !out.DecimalRate.IsZero() || !out.RequiresMoreInfo {
			t.Errorf("Interpret(%q) = %+v, want zero rate needing review", in, out)
		}
	}
}

func TestClientInterpret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method %s, want POST", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"decimal_rate":"0.045","requires_more_info":false,"explanation":"4.5% ad valorem"}`))
	}))
	defer srv.Close()

	out, err := NewClient(srv.URL, 5*time.Second).Interpret(context.Background(), "4.5%")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if !out.DecimalRate.Equal(decimal.RequireFromString("0.045")) {
		t.Errorf("rate %s, want 0.045", out.DecimalRate)
	}
	if out.Explanation != "4.5% ad valorem" {
		t.Errorf("explanation %q", out.Explanation)
	}
}

func TestClientNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, 5*time.Second).Interpret(context.Background(), "Free"); err == nil {
		t.Fatal("expected an error for a 503 response")
	}
}
