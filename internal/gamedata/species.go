package gamedata

import "github.com/gdamore/tcell/v2"

// SpeciesDef defines a monster species loaded from JSON.
type SpeciesDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "orc")
	Name        string `json:"name"`        // Display name (e.g., "orc")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "o")
	Color       string `json:"color"`       // Hex color code (e.g., "#3F7F3F")
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (s *SpeciesDef) GlyphRune() rune {
	for _, r := range s.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (s *SpeciesDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// SpeciesFile represents the structure of species.json.
type SpeciesFile struct {
	Species []SpeciesDef `json:"species"`
}

// LoadSpecies loads species definitions from the embedded species.json file.
func LoadSpecies() ([]SpeciesDef, error) {
	file, err := Load[SpeciesFile]("species.json")
	if err != nil {
		return nil, err
	}
	return file.Species, nil
}
