package chinese

import "testing"

func TestZodiacForYear(t *testing.T) {
	cases := map[int]string{
		1990: "Köpek",
		2000: "Maymun",
		2024: "Maymun",
		1984: "Ejderha",
	}
	for year, want := range cases {
		if got := ZodiacForYear(year); got != want {
			t.Errorf("ZodiacForYear(%d) = %q; want %q", year, got, want)
		}
	}
}

func TestZodiacForYear_TwelveYearCycle(t *testing.T) {
	for _, year := range []int{1900, 1953, 2024} {
		if ZodiacForYear(year) != ZodiacForYear(year+12) {
			t.Errorf("zodiac cycle broken at %d", year)
		}
	}
}

func TestElementForYear(t *testing.T) {
	cases := map[int]string{
		1990: "Ağaç",
		2024: "Toprak",
		1996: "Metal",
	}
	for year, want := range cases {
		if got := ElementForYear(year); got != want {
			t.Errorf("ElementForYear(%d) = %q; want %q", year, got, want)
		}
	}
	// Two-year periods: consecutive even/odd years share an element.
	if ElementForYear(2024) != ElementForYear(2025) {
		t.Errorf("element should be stable within a two-year period")
	}
}

func TestElementForYear_TenYearCycle(t *testing.T) {
	if ElementForYear(1990) != ElementForYear(2000) {
		t.Errorf("element cycle should repeat every 10 years")
	}
}
