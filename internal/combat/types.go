package combat

// Event is one entry of the simulation log. T is the clock reading at which
// the event happened, before the tick's advance.
type Event struct {
	T       int64          `json:"t"`
	Tick    int            `json:"tick"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Outcome is the state of the simulation as judged at the start of a tick.
type Outcome int

const (
	Running Outcome = iota
	CitizensWon
	MonsterWon
	Draw
)

// String returns the literal reported to the output sink.
func (o Outcome) String() string {
	switch o {
	case CitizensWon:
		return "CITIZENS WON"
	case MonsterWon:
		return "MONSTER WON"
	case Draw:
		return "DRAW"
	default:
		return "RUNNING"
	}
}

func (o Outcome) Terminal() bool { return o != Running }

// Status is the snapshot returned by Town.Status.
type Status[T Number] struct {
	MonsterName   string `json:"monster"`
	MonsterHealth T      `json:"monster_health"`
	Alive         int    `json:"alive"`
}

// CitizenStatus is a read-only view of one roster member.
type CitizenStatus[T Number] struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`
	Health T      `json:"health"`
	Age    T      `json:"age"`
	Attack T      `json:"attack,omitempty"`
}
