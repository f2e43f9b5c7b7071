package combat

// Integer is any value usable as a clock reading.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is any value usable for health, age and attack power.
type Number interface {
	Integer | ~float32 | ~float64
}

// clampDamage compares before subtracting so unsigned health never wraps.
func clampDamage[T Number](health, damage T) T {
	if damage >= health {
		return 0
	}
	return health - damage
}
