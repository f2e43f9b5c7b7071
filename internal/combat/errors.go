package combat

import "errors"

var (
	ErrInvalidAge    = errors.New("age outside the allowed range")
	ErrInvalidHealth = errors.New("health must be positive")
	ErrInvalidAttack = errors.New("attack power must not be negative")
	ErrInvalidWindow = errors.New("invalid simulation window")
	ErrUnknownKind   = errors.New("unknown citizen kind")
	ErrUnknownType   = errors.New("unknown monster type")
)

func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
