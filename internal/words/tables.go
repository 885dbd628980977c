package words

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Table file names expected under the data directory.
const (
	astroKeywordsFile      = "astro_keywords.json"
	numerologyKeywordsFile = "numerology_keywords.json"
	chineseKeywordsFile    = "chinese_keywords.json"
	relationshipMapFile    = "relationship_map.json"
	mottoTemplatesFile     = "motto_templates.json"
)

// Tables holds the static keyword reference data. It is loaded once at
// startup, validated, and treated as immutable afterwards; the engine
// only ever reads from it.
type Tables struct {
	// Astro maps a zodiac sign label to its keyword list.
	Astro map[string][]string
	// Numerology maps a digit key ("1".."9") to its keyword list.
	Numerology map[string][]string
	// Chinese maps a zodiac animal or element label to its keyword list.
	Chinese map[string][]string
	// Relationship maps an energy word (word2) to its ordered cornerstone
	// candidate words.
	Relationship map[string][]string
	// Mottos is the template list; templates contain the literal
	// placeholders [word1] and [word2].
	Mottos []string
}

// LoadTables reads and validates all keyword tables from dir. Unlike the
// geo city list, there is no sensible fallback for a missing keyword
// table, so any unreadable, malformed, or empty file is a configuration
// error the caller should treat as fatal at startup.
func LoadTables(dir string) (*Tables, error) {
	t := &Tables{}

	maps := []struct {
		file string
		dst  *map[string][]string
	}{
		{astroKeywordsFile, &t.Astro},
		{numerologyKeywordsFile, &t.Numerology},
		{chineseKeywordsFile, &t.Chinese},
		{relationshipMapFile, &t.Relationship},
	}
	for _, m := range maps {
		if err := loadJSON(filepath.Join(dir, m.file), m.dst); err != nil {
			return nil, err
		}
		if len(*m.dst) == 0 {
			return nil, fmt.Errorf("keyword table %s: no entries", m.file)
		}
	}

	if err := loadJSON(filepath.Join(dir, mottoTemplatesFile), &t.Mottos); err != nil {
		return nil, err
	}
	return t, nil
}

func loadJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("keyword table %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("keyword table %s: %w", filepath.Base(path), err)
	}
	return nil
}
