package numerology

import (
	"testing"
	"time"
)

func TestReduceToDigit(t *testing.T) {
	cases := map[int]int{
		1990:     1, // 1+9+9+0 = 19 → 1+9 = 10 → 1
		19981231: 7, // multi-pass reduction
		9:        9,
		10:       1,
		1:        1,
	}
	for in, want := range cases {
		if got := ReduceToDigit(in); got != want {
			t.Errorf("ReduceToDigit(%d) = %d; want %d", in, got, want)
		}
	}
}

func TestNameValue(t *testing.T) {
	if got := NameValue("John"); got != 2 {
		t.Errorf("NameValue(John) = %d; want 2", got)
	}
	// Turkish letters outside A–Z contribute nothing: Ayşe counts A, Y, E.
	if got := NameValue("Ayşe"); got != 4 {
		t.Errorf("NameValue(Ayşe) = %d; want 4", got)
	}
	// No recognized letters forces the 1 minimum.
	if got := NameValue("şğü"); got != 1 {
		t.Errorf("NameValue(şğü) = %d; want 1", got)
	}
	if got := NameValue(""); got != 1 {
		t.Errorf("NameValue(empty) = %d; want 1", got)
	}
}

func TestCompute_CoreNumbers(t *testing.T) {
	birth := time.Date(1990, 3, 21, 10, 0, 0, 0, time.UTC)
	n := Compute("Ayşe", "Yılmaz", birth)
	want := CoreNumbers{Destiny: 9, Soul: 6, Personality: 7, LifePath: 7}
	if n != want {
		t.Fatalf("Compute(Ayşe Yılmaz) = %+v; want %+v", n, want)
	}

	n = Compute("John", "Doe", time.Date(1985, 12, 7, 0, 0, 0, 0, time.UTC))
	want = CoreNumbers{Destiny: 8, Soul: 6, Personality: 5, LifePath: 6}
	if n != want {
		t.Fatalf("Compute(John Doe) = %+v; want %+v", n, want)
	}
}

func TestCompute_EmptyNameParts(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	// A vowel-less first name still yields soul = 1.
	n := Compute("Krk", "X", birth)
	if n.Soul != 1 {
		t.Errorf("soul for vowel-less name = %d; want 1", n.Soul)
	}
	// A consonant-less first name still yields personality = 1.
	n = Compute("Aa", "X", birth)
	if n.Personality != 1 {
		t.Errorf("personality for consonant-less name = %d; want 1", n.Personality)
	}
}

func TestDailyEnergyWord(t *testing.T) {
	// 2025-06-01: YYYYMMDD digit 7, ordinal 739403.
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	lookup := map[string][]string{
		"7": {"Sezgi", "Bilgelik", "Derinlik"},
	}
	want := lookup["7"][739403%3]
	if got := DailyEnergyWord(date, lookup); got != want {
		t.Fatalf("DailyEnergyWord = %q; want %q", got, want)
	}
}

func TestDailyEnergyWord_FallbackOnMissingDigit(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := DailyEnergyWord(date, map[string][]string{}); got != FallbackEnergyWord {
		t.Fatalf("DailyEnergyWord on empty table = %q; want %q", got, FallbackEnergyWord)
	}
	if got := DailyEnergyWord(date, map[string][]string{"7": {}}); got != FallbackEnergyWord {
		t.Fatalf("DailyEnergyWord on empty list = %q; want %q", got, FallbackEnergyWord)
	}
}

func TestDateDigit(t *testing.T) {
	if got := DateDigit(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)); got != 7 {
		t.Fatalf("DateDigit(2025-06-01) = %d; want 7", got)
	}
	if got := DateDigit(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)); got != 8 {
		t.Fatalf("DateDigit(2025-06-02) = %d; want 8", got)
	}
}
