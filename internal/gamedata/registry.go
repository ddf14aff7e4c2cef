package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// SpeciesRegistry holds loaded species definitions and provides weighted spawning.
type SpeciesRegistry struct {
	species     []SpeciesDef
	totalWeight int
}

// NewSpeciesRegistry creates a registry from species definitions.
// Every species needs a positive spawn weight.
func NewSpeciesRegistry(species []SpeciesDef) (*SpeciesRegistry, error) {
	if len(species) == 0 {
		return nil, errors.New("species table is empty")
	}

	totalWeight := 0
	for _, s := range species {
		if s.SpawnWeight <= 0 {
			return nil, fmt.Errorf("species %q: spawn weight must be positive, got %d", s.ID, s.SpawnWeight)
		}
		totalWeight += s.SpawnWeight
	}

	return &SpeciesRegistry{
		species:     species,
		totalWeight: totalWeight,
	}, nil
}

// LoadSpeciesRegistry loads and creates a registry from the embedded species.json.
func LoadSpeciesRegistry() (*SpeciesRegistry, error) {
	species, err := LoadSpecies()
	if err != nil {
		return nil, err
	}
	return NewSpeciesRegistry(species)
}

// MustLoadSpeciesRegistry loads a registry, panicking on error.
func MustLoadSpeciesRegistry() *SpeciesRegistry {
	registry, err := LoadSpeciesRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a species using weighted probability.
// Species with higher spawnWeight are more likely to be selected.
func (r *SpeciesRegistry) SpawnRandom(rng *rand.Rand) *SpeciesDef {
	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.species {
		cumulative += r.species[i].SpawnWeight
		if roll < cumulative {
			return &r.species[i]
		}
	}

	// Unreachable while every weight is positive
	return &r.species[len(r.species)-1]
}

// GetByID returns the species definition with the given ID, or nil if not found.
func (r *SpeciesRegistry) GetByID(id string) *SpeciesDef {
	for i := range r.species {
		if r.species[i].ID == id {
			return &r.species[i]
		}
	}
	return nil
}

// Count returns the number of species in the registry.
func (r *SpeciesRegistry) Count() int {
	return len(r.species)
}

// TotalWeight returns the sum of all spawn weights.
func (r *SpeciesRegistry) TotalWeight() int {
	return r.totalWeight
}
