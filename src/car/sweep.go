package car

import (
	"slices"

	"elevatorapi/src/types"
)

// The stop queue is a chain of sweeps. The first sweep starts at the car's
// floor and runs strictly in one direction; each following sweep starts at the
// last stop of the previous one and runs the other way.

func directionOf(origin int, stops []int) types.Direction {
	if len(stops) == 0 {
		return types.Idle
	}
	if stops[0] < origin {
		return types.Descending
	}
	return types.Ascending
}

// ahead reports whether to lies past from when travelling in dir.
func ahead(dir types.Direction, from, to int) bool {
	switch dir {
	case types.Ascending:
		return to > from
	case types.Descending:
		return to < from
	}
	return false
}

// sweepLen returns how many leading stops belong to the sweep starting at origin.
func sweepLen(origin int, stops []int, dir types.Direction) int {
	prev := origin
	for i, s := range stops {
		if !ahead(dir, prev, s) {
			return i
		}
		prev = s
	}
	return len(stops)
}

// insertStop places floor into the sweep starting at origin if it lies ahead,
// otherwise into the sweeps that follow, treating the last stop of the current
// sweep as the new origin. floor must not already be in stops.
func insertStop(origin int, stops []int, floor int) []int {
	if len(stops) == 0 {
		if floor == origin {
			return stops
		}
		return append(stops, floor)
	}

	dir := directionOf(origin, stops)
	n := sweepLen(origin, stops, dir)

	if ahead(dir, origin, floor) {
		i := n
		for j, s := range stops[:n] {
			if ahead(dir, floor, s) {
				i = j
				break
			}
		}
		return slices.Insert(stops, i, floor)
	}

	rest := insertStop(stops[n-1], stops[n:], floor)
	return append(stops[:n:n], rest...)
}
