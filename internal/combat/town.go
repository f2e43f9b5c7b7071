package combat

import (
	"fmt"
	"io"
	"os"
)

// Town runs one monster against a fixed roster of citizens. Combat rounds
// only happen when the clock reads a Fibonacci number.
//
// A Town is not safe for concurrent use.
type Town[T Number, U Integer] struct {
	monster  Monster[T]
	citizens []Citizen[T]
	start    U
	end      U
	now      U
	gate     FibGate[U]
	alive    int
	ticks    int
	rounds   int

	// Out receives the outcome literal every time a tick finds the game over.
	Out  io.Writer
	// Emit receives the event log. Never nil after NewTown.
	Emit func(Event)
}

// NewTown takes ownership of copies of the monster and citizens; later changes
// to the arguments do not affect the town.
func NewTown[T Number, U Integer](m Monster[T], start, end U, citizens ...Citizen[T]) (*Town[T, U], error) {
	if start < 0 || end <= 0 {
		return nil, fmt.Errorf("%w: start=%v end=%v", ErrInvalidWindow, start, end)
	}
	if !(m.Health() > 0) {
		return nil, fmt.Errorf("%w: %s with health %v", ErrInvalidHealth, m.TypeName(), m.Health())
	}
	roster := make([]Citizen[T], len(citizens))
	for i, c := range citizens {
		if c == nil {
			return nil, fmt.Errorf("%w: citizen %d is nil", ErrUnknownKind, i)
		}
		if err := checkRosterMember(c); err != nil {
			return nil, fmt.Errorf("citizen %d: %w", i, err)
		}
		roster[i] = c.clone()
	}
	t := &Town[T, U]{
		monster:  m,
		citizens: roster,
		start:    start,
		end:      end,
		now:      start,
		gate:     NewFibGate(end),
		Out:      os.Stdout,
		Emit:     func(Event) {},
	}
	t.countAlive()
	return t, nil
}

func MustTown[T Number, U Integer](m Monster[T], start, end U, citizens ...Citizen[T]) *Town[T, U] {
	return must(NewTown(m, start, end, citizens...))
}

// checkRosterMember rejects citizens that did not come from a constructor.
// Health is not checked: a citizen may already be wounded.
func checkRosterMember[T Number](c Citizen[T]) error {
	k := c.Kind()
	lo, hi := k.AgeRange()
	if age := c.Age(); !(age >= T(lo) && age <= T(hi)) {
		return fmt.Errorf("%w: %s aged %v (want %d-%d)", ErrInvalidAge, k, age, lo, hi)
	}
	if s, ok := c.(*SheriffCitizen[T]); ok && !(s.AttackPower() >= 0) {
		return fmt.Errorf("%w: sheriff with attack %v", ErrInvalidAttack, s.AttackPower())
	}
	return nil
}

func (t *Town[T, U]) countAlive() {
	t.alive = 0
	for _, c := range t.citizens {
		if c.Health() > 0 {
			t.alive++
		}
	}
}

// Outcome evaluates the terminal conditions against the current state.
func (t *Town[T, U]) Outcome() Outcome {
	dead := t.monster.Health() == 0
	switch {
	case dead && t.alive == 0:
		return Draw
	case dead:
		return CitizensWon
	case t.alive == 0:
		return MonsterWon
	}
	return Running
}

// Tick reports the outcome if the game is over, otherwise fights a round when
// the clock is on the gate. The clock then advances by step, wrapping past
// the end of the window.
func (t *Town[T, U]) Tick(step U) {
	if step < 0 {
		panic(fmt.Sprintf("combat: negative time step %v", step))
	}
	t.ticks++
	if o := t.Outcome(); o.Terminal() {
		fmt.Fprintln(t.Out, o.String())
		t.Emit(Event{T: int64(t.now), Tick: t.ticks, Type: "Outcome", Payload: map[string]any{
			"outcome": o.String(),
		}})
	} else if t.gate.Contains(t.now) {
		t.round()
	}
	t.now = advance(t.now, step, t.end)
}

// advance returns (now + step) mod (end + 1) without overflowing U, including
// when end is the largest value U can hold.
func advance[U Integer](now, step, end U) U {
	if end+1 > end {
		now %= end + 1
		step %= end + 1
	}
	// now and step are both in [0, end] here.
	if step <= end-now {
		return now + step
	}
	return step - (end - now) - 1
}

func (t *Town[T, U]) round() {
	t.rounds++
	t.Emit(Event{T: int64(t.now), Tick: t.ticks, Type: "Round", Payload: map[string]any{
		"round": t.rounds, "monster_hp": t.monster.Health(),
	}})
	t.alive = 0
	for i, c := range t.citizens {
		h := Attack(&t.monster, c)
		if c.Health() > 0 {
			t.alive++
		}
		payload := map[string]any{
			"index": i, "kind": c.Kind().String(),
			"dmg": h.Damage, "hp": c.Health(),
		}
		if h.Countered {
			payload["counter"] = h.Counter
			payload["monster_hp"] = t.monster.Health()
		}
		t.Emit(Event{T: int64(t.now), Tick: t.ticks, Type: "Hit", Payload: payload})
	}
}

// Status returns the monster's name and health and the cached alive count.
func (t *Town[T, U]) Status() Status[T] {
	return Status[T]{
		MonsterName:   t.monster.TypeName(),
		MonsterHealth: t.monster.Health(),
		Alive:         t.alive,
	}
}

func (t *Town[T, U]) Now() U                 { return t.now }
func (t *Town[T, U]) Window() (start, end U) { return t.start, t.end }
func (t *Town[T, U]) Gate() FibGate[U]       { return t.gate }
func (t *Town[T, U]) Monster() Monster[T]    { return t.monster }
func (t *Town[T, U]) Len() int               { return len(t.citizens) }
func (t *Town[T, U]) Ticks() int             { return t.ticks }
func (t *Town[T, U]) Rounds() int            { return t.rounds }

// Roster returns a snapshot of every citizen in construction order.
func (t *Town[T, U]) Roster() []CitizenStatus[T] {
	out := make([]CitizenStatus[T], len(t.citizens))
	for i, c := range t.citizens {
		out[i] = CitizenStatus[T]{Index: i, Kind: c.Kind().String(), Health: c.Health(), Age: c.Age()}
		if s, ok := c.(*SheriffCitizen[T]); ok {
			out[i].Attack = s.AttackPower()
		}
	}
	return out
}
