package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		name string
		s    string
		def  int
		want int
	}{
		{"empty query param keeps default", "", 20, 20},
		{"page number", "3", 1, 3},
		{"leading zeros", "007", 1, 7},
		{"negative passes through (caller clamps)", "-2", 1, -2},
		{"garbage keeps default", "abc", 20, 20},
		{"no trimming", " 3", 1, 1},
		{"overflow keeps default", "999999999999999999999999", 100, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AtoiDefault(tc.s, tc.def); got != tc.want {
				t.Fatalf("AtoiDefault(%q, %d) = %d; want %d", tc.s, tc.def, got, tc.want)
			}
		})
	}
}
