package combat

import "slices"

// FibGate holds the clock readings on which a combat round may happen:
// 1, 1, 2, 3, 5, ... up to the first value not below the end of the window.
type FibGate[U Integer] struct {
	nums []U
}

func NewFibGate[U Integer](end U) FibGate[U] {
	prev, cur := U(0), U(1)
	nums := []U{cur}
	for cur < end {
		next := prev + cur
		if next < cur {
			break // overflow
		}
		prev, cur = cur, next
		nums = append(nums, cur)
	}
	return FibGate[U]{nums: nums}
}

func (g FibGate[U]) Contains(t U) bool {
	_, ok := slices.BinarySearch(g.nums, t)
	return ok
}

func (g FibGate[U]) Values() []U { return slices.Clone(g.nums) }

func (g FibGate[U]) Len() int { return len(g.nums) }
