package combat

import (
	"encoding/json"
	"fmt"

	"smalltown/internal/config"
)

type SimResult struct {
	ID        string                   `json:"id"`
	Outcome   string                   `json:"outcome"`
	Finished  bool                     `json:"finished"`
	Ticks     int                      `json:"ticks"`
	Rounds    int                      `json:"rounds"`
	FinalTime int64                    `json:"final_time"`
	Status    Status[float64]          `json:"status"`
	Roster    []CitizenStatus[float64] `json:"roster"`
	Events    []Event                  `json:"events,omitempty"`
	Meta      SimMeta                  `json:"meta"`
}

type SimMeta struct {
	Note     string           `json:"note,omitempty"`
	Monster  SimMonsterMeta   `json:"monster"`
	Start    int64            `json:"start"`
	End      int64            `json:"end"`
	Gate     []int64          `json:"gate"`
	Citizens []SimCitizenMeta `json:"citizens"`
}

type SimCitizenMeta struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Note string `json:"note,omitempty"`
}

type SimMonsterMeta struct {
	Name   string  `json:"name"`
	Health float64 `json:"health"`
	Attack float64 `json:"attack"`
}

// RunSingle ticks the town according to plan until a tick reports a terminal
// outcome or the plan's tick budget runs out. The town's Emit hook is
// replaced for the duration of the run.
func RunSingle(sc *config.Scenario, town *SimTown, record bool) SimResult {
	var events []Event
	emit := func(ev Event) {
		if record {
			events = append(events, ev)
		}
	}
	prev := town.Emit
	town.Emit = emit
	defer func() { town.Emit = prev }()

	start, end := town.Window()
	m := town.Monster()
	meta := SimMeta{
		Note: sc.Note,
		Monster: SimMonsterMeta{
			Name:   m.TypeName(),
			Health: m.Health(),
			Attack: m.AttackPower(),
		},
		Start: start,
		End:   end,
		Gate:  town.Gate().Values(),
	}
	for i, d := range sc.Citizens {
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("%s#%d", d.Kind, i)
		}
		meta.Citizens = append(meta.Citizens, SimCitizenMeta{Name: name, Kind: d.Kind, Note: d.Note})
	}

	outcome := Running
	for i := 0; i < sc.Plan.MaxTicks; i++ {
		outcome = town.Outcome()
		town.Tick(sc.Plan.StepAt(i))
		if outcome.Terminal() {
			break
		}
	}

	res := SimResult{
		ID:        sc.ID,
		Outcome:   outcome.String(),
		Finished:  outcome.Terminal(),
		Ticks:     town.Ticks(),
		Rounds:    town.Rounds(),
		FinalTime: town.Now(),
		Status:    town.Status(),
		Roster:    town.Roster(),
		Meta:      meta,
	}
	if record {
		res.Events = events
	}
	return res
}

func MarshalPretty(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
