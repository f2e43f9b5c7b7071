package combat

import "testing"

func TestAttackCivilian(t *testing.T) {
	m := MustMonster(Zombie, 10, 4)
	c := MustAdult(10, 30)
	h := Attack[int](&m, c)
	if c.Health() != 6 || m.Health() != 10 {
		t.Fatalf("expected citizen 6 / monster 10, got %v / %v", c.Health(), m.Health())
	}
	if h.Countered || h.Damage != 4 {
		t.Fatalf("unexpected hit %+v", h)
	}
}

func TestAttackSheriffCounters(t *testing.T) {
	m := MustMonster(Vampire, 10, 5)
	s := MustSheriff(20, 30, 7)
	h := Attack[int](&m, s)
	if m.Health() != 3 {
		t.Fatalf("monster: expected 3, got %v", m.Health())
	}
	if s.Health() != 15 {
		t.Fatalf("sheriff: expected 15, got %v", s.Health())
	}
	if !h.Countered || h.Counter != 7 || h.Damage != 5 {
		t.Fatalf("unexpected hit %+v", h)
	}
}

func TestAttackDeadSheriffDoesNotCounter(t *testing.T) {
	m := MustMonster(Mummy, 10, 5)
	s := MustSheriff(5, 30, 7)
	s.TakeDamage(5)
	h := Attack[int](&m, s)
	if m.Health() != 10 {
		t.Fatalf("dead sheriff countered: monster at %v", m.Health())
	}
	if s.Health() != 0 || h.Countered {
		t.Fatalf("unexpected sheriff %v, hit %+v", s.Health(), h)
	}
}

func TestAttackSheriffCountersBeforeBeingHit(t *testing.T) {
	m := MustMonster(Mummy, 10, 100)
	s := MustSheriff(30, 45, 10)
	Attack[int](&m, s)
	if m.Health() != 0 || s.Health() != 0 {
		t.Fatalf("expected both at 0, got monster %v sheriff %v", m.Health(), s.Health())
	}
}
