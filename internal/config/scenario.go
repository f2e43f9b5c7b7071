package config

// Scenario is one YAML scenario document.
type Scenario struct {
	ID       string       `yaml:"id"`
	Note     string       `yaml:"note"`
	Monster  MonsterDef   `yaml:"monster"`
	Window   WindowDef    `yaml:"window"`
	Citizens []CitizenDef `yaml:"citizens"`
	Plan     PlanDef      `yaml:"plan"`
}

type MonsterDef struct {
	Type   string  `yaml:"type"`
	Health float64 `yaml:"health"`
	Attack float64 `yaml:"attack"`
}

type WindowDef struct {
	Start int64 `yaml:"start"`
	End   int64 `yaml:"end"`
}

type CitizenDef struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Health float64 `yaml:"health"`
	Age    float64 `yaml:"age"`
	Attack float64 `yaml:"attack"`
	Note   string  `yaml:"note"`
}

// PlanDef drives the clock. Steps, when given, are cycled; otherwise every
// tick advances by Step, or DefaultStep when Step is unset.
type PlanDef struct {
	Step     *int64  `yaml:"step"`
	Steps    []int64 `yaml:"steps"`
	MaxTicks int     `yaml:"max_ticks"`
}

const (
	DefaultStep     = 1
	DefaultMaxTicks = 1000
)

// StepAt returns the step for the i-th tick (0-based).
func (p PlanDef) StepAt(i int) int64 {
	if len(p.Steps) > 0 {
		return p.Steps[i%len(p.Steps)]
	}
	if p.Step == nil {
		return DefaultStep
	}
	return *p.Step
}

// Step returns a pointer to n, for building plans in code.
func Step(n int64) *int64 { return &n }
