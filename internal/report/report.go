// Package report renders human-readable simulation summaries.
package report

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"smalltown/internal/combat"
)

// NewPrinter returns a printer for the given language tag, falling back to
// English when the tag does not parse.
func NewPrinter(lang string) *message.Printer {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// StatusLine formats a town status snapshot.
func StatusLine(p *message.Printer, st combat.Status[float64]) string {
	return p.Sprintf("%s: health %v, citizens alive %d", st.MonsterName, st.MonsterHealth, st.Alive)
}

// ResultLine formats the headline of one scenario run.
func ResultLine(p *message.Printer, res combat.SimResult) string {
	if !res.Finished {
		return p.Sprintf("%s: no outcome after %d ticks (%d rounds), %s",
			res.ID, res.Ticks, res.Rounds, StatusLine(p, res.Status))
	}
	return p.Sprintf("%s: %s after %d ticks (%d rounds), %s",
		res.ID, res.Outcome, res.Ticks, res.Rounds, StatusLine(p, res.Status))
}

// Summary aggregates a batch of runs.
type Summary struct {
	Runs       int            `json:"runs"`
	Finished   int            `json:"finished"`
	ByOutcome  map[string]int `json:"by_outcome"`
	TotalTicks int            `json:"total_ticks"`
	Rounds     int            `json:"rounds"`
	Scenarios  []string       `json:"scenarios"`
}

func Summarize(results []combat.SimResult) Summary {
	s := Summary{ByOutcome: map[string]int{}}
	for _, r := range results {
		s.Runs++
		if r.Finished {
			s.Finished++
		}
		s.ByOutcome[r.Outcome]++
		s.TotalTicks += r.Ticks
		s.Rounds += r.Rounds
		s.Scenarios = append(s.Scenarios, r.ID)
	}
	sort.Strings(s.Scenarios)
	return s
}

// SummaryLines renders one line per outcome in a stable order.
func SummaryLines(p *message.Printer, s Summary) []string {
	lines := []string{p.Sprintf("%d runs, %d finished, %d ticks, %d rounds", s.Runs, s.Finished, s.TotalTicks, s.Rounds)}
	keys := make([]string, 0, len(s.ByOutcome))
	for k := range s.ByOutcome {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, p.Sprintf("  %s: %d", k, s.ByOutcome[k]))
	}
	return lines
}
