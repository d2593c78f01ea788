package hts

import "testing"

func TestNormalizeStripsNonDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"7302.90.00", "73029000"},
		{" 7302.90.0010 ", "7302900010"},
		{"7302-90-00", "73029000"},
		{"ch. 73 heading 7302", "737302"},
		{"73029000", "73029000"},
		{"", ""},
		{"no digits here", ""},
		{"...", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"7302.90.00", "84.71", "abc123def456", "", "9999999999"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
