package combat

import (
	"fmt"
	"strings"
)

// Kind identifies a citizen species.
type Kind int

const (
	Teenager Kind = iota
	Adult
	Sheriff
)

func (k Kind) String() string {
	switch k {
	case Teenager:
		return "teenager"
	case Adult:
		return "adult"
	case Sheriff:
		return "sheriff"
	default:
		return "unknown"
	}
}

// AgeRange returns the inclusive age bounds for the kind.
func (k Kind) AgeRange() (lo, hi int) {
	if k == Teenager {
		return 11, 17
	}
	return 18, 100
}

// CanFight reports whether citizens of this kind counter-attack.
func (k Kind) CanFight() bool { return k == Sheriff }

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "teenager":
		return Teenager, nil
	case "adult":
		return Adult, nil
	case "sheriff":
		return Sheriff, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Citizen is one member of the town roster. The set of implementations is
// closed: *Civilian and *SheriffCitizen.
type Citizen[T Number] interface {
	Kind() Kind
	Health() T
	Age() T
	TakeDamage(d T)
	clone() Citizen[T]
}

// Civilian is a citizen that never fights back.
type Civilian[T Number] struct {
	kind   Kind
	health T
	age    T
}

func (c *Civilian[T]) Kind() Kind     { return c.kind }
func (c *Civilian[T]) Health() T      { return c.health }
func (c *Civilian[T]) Age() T         { return c.age }
func (c *Civilian[T]) TakeDamage(d T) { c.health = clampDamage(c.health, d) }
func (c *Civilian[T]) clone() Citizen[T] {
	cp := *c
	return &cp
}

// SheriffCitizen is the fighting citizen: it carries an attack power and hits
// the monster back while alive.
type SheriffCitizen[T Number] struct {
	health T
	age    T
	attack T
}

func (s *SheriffCitizen[T]) Kind() Kind     { return Sheriff }
func (s *SheriffCitizen[T]) Health() T      { return s.health }
func (s *SheriffCitizen[T]) Age() T         { return s.age }
func (s *SheriffCitizen[T]) AttackPower() T { return s.attack }
func (s *SheriffCitizen[T]) TakeDamage(d T) { s.health = clampDamage(s.health, d) }
func (s *SheriffCitizen[T]) clone() Citizen[T] {
	cp := *s
	return &cp
}

func checkCitizen[T Number](k Kind, health, age T) error {
	lo, hi := k.AgeRange()
	if !(age >= T(lo) && age <= T(hi)) {
		return fmt.Errorf("%w: %s aged %v (want %d-%d)", ErrInvalidAge, k, age, lo, hi)
	}
	if !(health > 0) {
		return fmt.Errorf("%w: %s with health %v", ErrInvalidHealth, k, health)
	}
	return nil
}

func newCivilian[T Number](k Kind, health, age T) (*Civilian[T], error) {
	if err := checkCitizen(k, health, age); err != nil {
		return nil, err
	}
	return &Civilian[T]{kind: k, health: health, age: age}, nil
}

func NewTeenager[T Number](health, age T) (*Civilian[T], error) {
	return newCivilian(Teenager, health, age)
}

func NewAdult[T Number](health, age T) (*Civilian[T], error) {
	return newCivilian(Adult, health, age)
}

func NewSheriff[T Number](health, age, attack T) (*SheriffCitizen[T], error) {
	if err := checkCitizen(Sheriff, health, age); err != nil {
		return nil, err
	}
	if !(attack >= 0) {
		return nil, fmt.Errorf("%w: sheriff with attack %v", ErrInvalidAttack, attack)
	}
	return &SheriffCitizen[T]{health: health, age: age, attack: attack}, nil
}

// NewCitizen builds a citizen of any kind. Non-fighting kinds reject a
// non-zero attack rather than silently dropping it.
func NewCitizen[T Number](k Kind, health, age, attack T) (Citizen[T], error) {
	if k < Teenager || k > Sheriff {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	if k.CanFight() {
		s, err := NewSheriff(health, age, attack)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	if attack != 0 {
		return nil, fmt.Errorf("%w: %s cannot carry attack power %v", ErrInvalidAttack, k, attack)
	}
	c, err := newCivilian(k, health, age)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func MustTeenager[T Number](health, age T) *Civilian[T] {
	return must(NewTeenager(health, age))
}

func MustAdult[T Number](health, age T) *Civilian[T] {
	return must(NewAdult(health, age))
}

func MustSheriff[T Number](health, age, attack T) *SheriffCitizen[T] {
	return must(NewSheriff(health, age, attack))
}
