package combat

// Hit records what one attack did, for the event log.
type Hit[T Number] struct {
	Damage    T
	Counter   T
	Countered bool
}

// Attack resolves the monster attacking one citizen. A living sheriff strikes
// the monster first; every citizen, living or not, then takes the monster's
// attack power.
func Attack[T Number](m *Monster[T], c Citizen[T]) Hit[T] {
	var h Hit[T]
	if s, ok := c.(*SheriffCitizen[T]); ok && s.Health() > 0 {
		h.Counter = s.AttackPower()
		h.Countered = true
		m.TakeDamage(h.Counter)
	}
	h.Damage = m.AttackPower()
	c.TakeDamage(h.Damage)
	return h
}
