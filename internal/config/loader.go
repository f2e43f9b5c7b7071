package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadScenario reads one scenario file and fills in defaults.
func LoadScenario(path string) (*Scenario, error) {
	var sc Scenario
	if err := loadYAML(path, &sc); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	if err := sc.normalize(path); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// LoadDir loads every *.yaml / *.yml file in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario dir %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	out := make([]*Scenario, 0, len(names))
	for _, n := range names {
		sc, err := LoadScenario(filepath.Join(dir, n))
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

func (sc *Scenario) normalize(path string) error {
	if sc.ID == "" {
		base := filepath.Base(path)
		sc.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if sc.Monster.Type == "" {
		return fmt.Errorf("monster.type is required")
	}
	if len(sc.Plan.Steps) == 0 && sc.Plan.Step == nil {
		sc.Plan.Step = Step(DefaultStep)
	}
	if sc.Plan.Step != nil && *sc.Plan.Step < 0 {
		return fmt.Errorf("plan.step must not be negative, got %d", *sc.Plan.Step)
	}
	for i, s := range sc.Plan.Steps {
		if s < 0 {
			return fmt.Errorf("plan.steps[%d] must not be negative, got %d", i, s)
		}
	}
	if sc.Plan.MaxTicks <= 0 {
		sc.Plan.MaxTicks = DefaultMaxTicks
	}
	for i := range sc.Citizens {
		if sc.Citizens[i].Name == "" {
			sc.Citizens[i].Name = fmt.Sprintf("%s#%d", sc.Citizens[i].Kind, i)
		}
	}
	return nil
}
