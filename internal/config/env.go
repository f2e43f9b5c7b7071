package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds process configuration for the simulator command.
type Settings struct {
	Scenario  string `env:"SMALLTOWN_SCENARIO"`
	ConfigDir string `env:"SMALLTOWN_CONFIG_DIR" envDefault:"assets/scenarios"`
	Out       string `env:"SMALLTOWN_OUT"        envDefault:"out.json"`
	Workers   int    `env:"SMALLTOWN_WORKERS"    envDefault:"8"`
	Lang      string `env:"SMALLTOWN_LANG"       envDefault:"en"`
	Log       bool   `env:"SMALLTOWN_LOG"        envDefault:"true"`
}

// ParseSettings reads the environment, then lets flags override it.
func ParseSettings(fs *flag.FlagSet, args []string) (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&s.Scenario, "scenario", s.Scenario, "single scenario file (empty runs every scenario in -config)")
	fs.StringVar(&s.ConfigDir, "config", s.ConfigDir, "scenario dir")
	fs.StringVar(&s.Out, "out", s.Out, "output file (single) or summary file (batch)")
	fs.IntVar(&s.Workers, "workers", s.Workers, "batch worker count")
	fs.StringVar(&s.Lang, "lang", s.Lang, "language tag for status lines")
	fs.BoolVar(&s.Log, "log", s.Log, "save full event log for single runs")
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}
	if s.Workers <= 0 {
		s.Workers = 1
	}
	return s, nil
}
