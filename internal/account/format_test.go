package account

import "testing"

func TestFormatNaira(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₦0"},
		{90000, "₦90,000"},
		{100000, "₦100,000"},
		{1000000, "₦1,000,000"},
		{123, "₦123"},
		{1234, "₦1,234"},
		{1234.5, "₦1,234.5"},
		{1234.5678, "₦1,234.568"},
		{-10000, "₦-10,000"},
		{999.999, "₦999.999"},
	}
	for _, tc := range cases {
		if got := FormatNaira(tc.in); got != tc.want {
			t.Errorf("FormatNaira(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
