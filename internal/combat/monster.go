package combat

import (
	"fmt"
	"strings"
)

type MonsterType int

const (
	Mummy MonsterType = iota
	Zombie
	Vampire
)

func (t MonsterType) String() string {
	switch t {
	case Mummy:
		return "Mummy"
	case Zombie:
		return "Zombie"
	case Vampire:
		return "Vampire"
	default:
		return "Unknown"
	}
}

func ParseMonsterType(s string) (MonsterType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mummy":
		return Mummy, nil
	case "zombie":
		return Zombie, nil
	case "vampire":
		return Vampire, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Monster is the single attacker the town defends against.
type Monster[T Number] struct {
	typ    MonsterType
	health T
	attack T
}

func NewMonster[T Number](typ MonsterType, health, attack T) (Monster[T], error) {
	if typ < Mummy || typ > Vampire {
		return Monster[T]{}, fmt.Errorf("%w: %d", ErrUnknownType, int(typ))
	}
	if !(health > 0) {
		return Monster[T]{}, fmt.Errorf("%w: %s with health %v", ErrInvalidHealth, typ, health)
	}
	if !(attack >= 0) {
		return Monster[T]{}, fmt.Errorf("%w: %s with attack %v", ErrInvalidAttack, typ, attack)
	}
	return Monster[T]{typ: typ, health: health, attack: attack}, nil
}

func MustMonster[T Number](typ MonsterType, health, attack T) Monster[T] {
	return must(NewMonster(typ, health, attack))
}

func NewMummy[T Number](health, attack T) (Monster[T], error) {
	return NewMonster(Mummy, health, attack)
}

func NewZombie[T Number](health, attack T) (Monster[T], error) {
	return NewMonster(Zombie, health, attack)
}

func NewVampire[T Number](health, attack T) (Monster[T], error) {
	return NewMonster(Vampire, health, attack)
}

func (m *Monster[T]) Type() MonsterType { return m.typ }
func (m *Monster[T]) TypeName() string  { return m.typ.String() }
func (m *Monster[T]) Health() T         { return m.health }
func (m *Monster[T]) AttackPower() T    { return m.attack }
func (m *Monster[T]) TakeDamage(d T)    { m.health = clampDamage(m.health, d) }
