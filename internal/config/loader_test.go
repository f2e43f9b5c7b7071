package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

const minimalScenario = `
monster:
  type: vampire
  health: 10
  attack: 5
window:
  end: 10
citizens:
  - kind: sheriff
    health: 20
    age: 30
    attack: 7
  - kind: teenager
    name: kid
    health: 5
    age: 12
`

func TestLoadScenarioDefaults(t *testing.T) {
	p := writeFile(t, t.TempDir(), "lonely.yaml", minimalScenario)
	sc, err := LoadScenario(p)
	if err != nil {
		t.Fatal(err)
	}
	if sc.ID != "lonely" {
		t.Errorf("expected id from file name, got %q", sc.ID)
	}
	if sc.Plan.StepAt(0) != DefaultStep || sc.Plan.Step == nil || sc.Plan.MaxTicks != DefaultMaxTicks {
		t.Errorf("unexpected plan defaults %+v", sc.Plan)
	}
	if sc.Monster.Type != "vampire" || sc.Monster.Health != 10 || sc.Window.End != 10 {
		t.Errorf("unexpected scenario %+v", sc)
	}
	if len(sc.Citizens) != 2 || sc.Citizens[0].Name != "sheriff#0" || sc.Citizens[1].Name != "kid" {
		t.Errorf("unexpected citizens %+v", sc.Citizens)
	}
	if sc.Citizens[0].Attack != 7 {
		t.Errorf("expected attack 7, got %v", sc.Citizens[0].Attack)
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"no_monster.yaml": "window: {end: 10}\n",
		"neg_step.yaml":   "monster: {type: mummy, health: 1}\nplan: {step: -1}\n",
		"neg_steps.yaml":  "monster: {type: mummy, health: 1}\nplan: {steps: [1, -2]}\n",
		"broken.yaml":     "monster: [\n",
	}
	for name, body := range cases {
		p := writeFile(t, dir, name, body)
		_, err := LoadScenario(p)
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !strings.Contains(err.Error(), name) {
			t.Errorf("%s: error does not name the file: %v", name, err)
		}
	}
	if _, err := LoadScenario(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", minimalScenario)
	writeFile(t, dir, "a.yml", minimalScenario)
	writeFile(t, dir, "notes.txt", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected scenarios %+v", got)
	}
}

func TestLoadDirShippedScenarios(t *testing.T) {
	got, err := LoadDir(filepath.Join("..", "..", "assets", "scenarios"))
	if err != nil {
		t.Fatal(err)
	}
	ids := make([]string, len(got))
	for i, sc := range got {
		ids[i] = sc.ID
	}
	if strings.Join(ids, ",") != "citizens_win,counter,draw,monster_win" {
		t.Fatalf("unexpected scenarios %v", ids)
	}
}

func TestPlanStepAt(t *testing.T) {
	p := PlanDef{Step: Step(3)}
	if p.StepAt(0) != 3 || p.StepAt(7) != 3 {
		t.Fatal("constant step")
	}
	p = PlanDef{Step: Step(3), Steps: []int64{1, 2}}
	if p.StepAt(0) != 1 || p.StepAt(1) != 2 || p.StepAt(2) != 1 {
		t.Fatal("cycled steps")
	}
}

func TestParseSettings(t *testing.T) {
	t.Setenv("SMALLTOWN_WORKERS", "3")
	t.Setenv("SMALLTOWN_LANG", "de")
	t.Setenv("SMALLTOWN_OUT", "env.json")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	s, err := ParseSettings(fs, []string{"-out", "flag.json", "-log=false"})
	if err != nil {
		t.Fatal(err)
	}
	if s.Workers != 3 || s.Lang != "de" {
		t.Errorf("env values not applied: %+v", s)
	}
	if s.Out != "flag.json" || s.Log {
		t.Errorf("flags did not override env: %+v", s)
	}
	if s.ConfigDir != "assets/scenarios" {
		t.Errorf("unexpected default config dir %q", s.ConfigDir)
	}
}

func TestParseSettingsBadEnv(t *testing.T) {
	t.Setenv("SMALLTOWN_WORKERS", "many")
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := ParseSettings(fs, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadScenarioKeepsZeroStep(t *testing.T) {
	p := writeFile(t, t.TempDir(), "still.yaml", minimalScenario+"plan:\n  step: 0\n")
	sc, err := LoadScenario(p)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Plan.Step == nil || *sc.Plan.Step != 0 || sc.Plan.StepAt(3) != 0 {
		t.Fatalf("explicit zero step was not kept: %+v", sc.Plan)
	}
	if (PlanDef{}).StepAt(0) != DefaultStep {
		t.Fatal("unset step should fall back to the default")
	}
}

func TestLoadScenarioCitizenNote(t *testing.T) {
	body := minimalScenario + "    note: hides under the bed\n"
	sc, err := LoadScenario(writeFile(t, t.TempDir(), "noted.yaml", body))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Citizens[1].Note != "hides under the bed" {
		t.Fatalf("unexpected note %q", sc.Citizens[1].Note)
	}
}
