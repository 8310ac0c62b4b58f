package ui

import "testing"

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{10.99, "R$ 10,99"},
		{695, "R$ 695,00"},
		{1234.5, "R$ 1.234,50"},
		{0, "R$ 0,00"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.in); got != tc.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
