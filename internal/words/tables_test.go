package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTable(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func writeValidTables(t *testing.T, dir string) {
	t.Helper()
	writeTable(t, dir, astroKeywordsFile, `{"Koç": ["Cesaret"]}`)
	writeTable(t, dir, numerologyKeywordsFile, `{"1": ["Liderlik"]}`)
	writeTable(t, dir, chineseKeywordsFile, `{"Köpek": ["Sadakat"]}`)
	writeTable(t, dir, relationshipMapFile, `{"Akış": ["Uyum"]}`)
	writeTable(t, dir, mottoTemplatesFile, `["Bugün [word1], [word2] günü."]`)
}

func TestLoadTables_OK(t *testing.T) {
	dir := t.TempDir()
	writeValidTables(t, dir)

	tables, err := LoadTables(dir)
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}
	if got := tables.Astro["Koç"]; len(got) != 1 || got[0] != "Cesaret" {
		t.Fatalf("astro table = %v", got)
	}
	if len(tables.Mottos) != 1 {
		t.Fatalf("mottos = %v", tables.Mottos)
	}
}

func TestLoadTables_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeValidTables(t, dir)
	if err := os.Remove(filepath.Join(dir, chineseKeywordsFile)); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTables(dir); err == nil {
		t.Fatal("expected error for missing table file")
	} else if !strings.Contains(err.Error(), chineseKeywordsFile) {
		t.Fatalf("error does not name the file: %v", err)
	}
}

func TestLoadTables_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeValidTables(t, dir)
	writeTable(t, dir, numerologyKeywordsFile, `{"1": `)

	if _, err := LoadTables(dir); err == nil {
		t.Fatal("expected error for malformed table file")
	}
}

func TestLoadTables_EmptyMapTable(t *testing.T) {
	dir := t.TempDir()
	writeValidTables(t, dir)
	writeTable(t, dir, relationshipMapFile, `{}`)

	if _, err := LoadTables(dir); err == nil {
		t.Fatal("expected error for empty relationship map")
	}
}

func TestLoadTables_ShippedData(t *testing.T) {
	tables, err := LoadTables("../../data")
	if err != nil {
		t.Fatalf("shipped data tables: %v", err)
	}
	for _, sign := range []string{"Koç", "Boğa", "İkizler", "Yengeç", "Aslan", "Başak", "Terazi", "Akrep", "Yay", "Oğlak", "Kova", "Balık"} {
		if len(tables.Astro[sign]) == 0 {
			t.Fatalf("no keywords for sign %s", sign)
		}
	}
	for d := '1'; d <= '9'; d++ {
		if len(tables.Numerology[string(d)]) == 0 {
			t.Fatalf("no keywords for digit %c", d)
		}
	}
	if len(tables.Mottos) == 0 {
		t.Fatal("no motto templates shipped")
	}
	for i, tpl := range tables.Mottos {
		if !strings.Contains(tpl, "[word1]") || !strings.Contains(tpl, "[word2]") {
			t.Fatalf("motto %d missing placeholders: %q", i, tpl)
		}
	}
}
