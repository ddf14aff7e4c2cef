package gamedata

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadSpecies(t *testing.T) {
	species, err := LoadSpecies()
	if err != nil {
		t.Fatalf("Failed to load species: %v", err)
	}

	if len(species) != 2 {
		t.Errorf("Expected 2 species, got %d", len(species))
	}

	expected := map[string]int{"orc": 80, "troll": 20}
	for _, s := range species {
		weight, ok := expected[s.ID]
		if !ok {
			t.Errorf("Unexpected species %q", s.ID)
			continue
		}
		if s.SpawnWeight != weight {
			t.Errorf("Species %q weight = %d, want %d", s.ID, s.SpawnWeight, weight)
		}
	}
}

func TestSpeciesRegistry(t *testing.T) {
	registry, err := LoadSpeciesRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 species, got %d", registry.Count())
	}
	if registry.TotalWeight() != 100 {
		t.Errorf("Expected total weight 100, got %d", registry.TotalWeight())
	}

	troll := registry.GetByID("troll")
	if troll == nil {
		t.Fatal("Troll not found by ID")
	}
	if troll.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", troll.GlyphRune())
	}
	if registry.GetByID("dragon") != nil {
		t.Error("GetByID should return nil for unknown species")
	}

	// Test weighted spawning is deterministic with same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 20; i++ {
		s1 := registry.SpawnRandom(rng1).ID
		s2 := registry.SpawnRandom(rng2).ID
		if s1 != s2 {
			t.Errorf("Spawn %d mismatch: %s != %s", i, s1, s2)
		}
	}
}

func TestSpawnRandomFollowsWeights(t *testing.T) {
	registry, err := NewSpeciesRegistry([]SpeciesDef{
		{ID: "common", SpawnWeight: 80},
		{ID: "rare", SpawnWeight: 20},
	})
	if err != nil {
		t.Fatalf("NewSpeciesRegistry() error: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	counts := map[string]int{}
	const draws = 10000
	for i := 0; i < draws; i++ {
		counts[registry.SpawnRandom(rng).ID]++
	}

	// 20% +/- 3%
	if rare := counts["rare"]; rare < 1700 || rare > 2300 {
		t.Errorf("rare drawn %d times out of %d, expected about 2000", rare, draws)
	}
}

func TestNewSpeciesRegistryRejectsBadTables(t *testing.T) {
	if _, err := NewSpeciesRegistry(nil); err == nil {
		t.Error("empty table should be rejected")
	}
	if _, err := NewSpeciesRegistry([]SpeciesDef{{ID: "ghost", SpawnWeight: 0}}); err == nil {
		t.Error("zero weight should be rejected")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#3F7F3F", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	color, _ := ParseHexColor("#3F7F3F")
	if r, g, b := color.RGB(); r != 0x3F || g != 0x7F || b != 0x3F {
		t.Errorf("ParseHexColor(#3F7F3F) = (%d,%d,%d)", r, g, b)
	}
	if color == tcell.ColorDefault {
		t.Error("ParseHexColor returned the default color")
	}
}
