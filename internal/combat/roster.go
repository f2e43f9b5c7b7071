package combat

import (
	"fmt"

	"smalltown/internal/config"
)

// SimTown is the town instantiation used for YAML scenarios.
type SimTown = Town[float64, int64]

// NewRoster builds citizens from their definitions, keeping definition order.
func NewRoster(defs []config.CitizenDef) ([]Citizen[float64], error) {
	out := make([]Citizen[float64], 0, len(defs))
	for i, d := range defs {
		k, err := ParseKind(d.Kind)
		if err != nil {
			return nil, fmt.Errorf("citizen %d (%s): %w", i, d.Name, err)
		}
		c, err := NewCitizen(k, d.Health, d.Age, d.Attack)
		if err != nil {
			return nil, fmt.Errorf("citizen %d (%s): %w", i, d.Name, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// BuildTown constructs the town described by a scenario.
func BuildTown(sc *config.Scenario) (*SimTown, error) {
	typ, err := ParseMonsterType(sc.Monster.Type)
	if err != nil {
		return nil, fmt.Errorf("monster: %w", err)
	}
	m, err := NewMonster(typ, sc.Monster.Health, sc.Monster.Attack)
	if err != nil {
		return nil, fmt.Errorf("monster: %w", err)
	}
	roster, err := NewRoster(sc.Citizens)
	if err != nil {
		return nil, err
	}
	return NewTown(m, sc.Window.Start, sc.Window.End, roster...)
}
