package dispatcher

import (
	"log/slog"

	"elevatorapi/src/car"
	"elevatorapi/src/types"
)

// selectCar chooses the car to serve floor. cars must be ordered by id.
//   - the first car that is idle, already heading to floor or already there wins
//   - otherwise only cars whose current sweep can reach floor are considered
//   - among those, fewest stops, then closest, then lowest id
func selectCar(cars []*car.Car, floor int) (*car.Car, error) {
	for _, c := range cars {
		if immediateMatch(c, floor) {
			slog.Debug("Immediate match", "floor", floor, "car", c.ID(), "direction", c.Direction())
			return c, nil
		}
	}

	var candidates []*car.Car
	for _, c := range cars {
		if sweepReaches(c, floor) {
			candidates = append(candidates, c)
		}
	}

	switch len(candidates) {
	case 0:
		slog.Error("No candidate for call", "floor", floor, "cars", len(cars))
		return nil, types.ErrNoCandidate
	case 1:
		return candidates[0], nil
	}
	return findAssignee(candidates, floor), nil
}

func immediateMatch(c *car.Car, floor int) bool {
	if c.Direction() == types.Idle || c.CurrentFloor() == floor {
		return true
	}
	next, _ := c.NextFloor()
	return next == floor
}

func sweepReaches(c *car.Car, floor int) bool {
	next, ok := c.NextFloor()
	if !ok {
		return false
	}
	if floor > next {
		return c.Direction() == types.Ascending
	}
	return c.Direction() == types.Descending
}

func findAssignee(candidates []*car.Car, floor int) *car.Car {
	assignee := candidates[0]
	for _, c := range candidates[1:] {
		if preferred(c, assignee, floor) {
			assignee = c
		}
	}
	slog.Debug("Assigning call to least loaded car",
		"floor", floor,
		"car", assignee.ID(),
		"stops", assignee.NumStops(),
		"candidates", len(candidates))
	return assignee
}

// preferred reports whether a should be chosen over b.
func preferred(a, b *car.Car, floor int) bool {
	if a.NumStops() != b.NumStops() {
		return a.NumStops() < b.NumStops()
	}
	if da, db := distance(a, floor), distance(b, floor); da != db {
		return da < db
	}
	return a.ID() < b.ID()
}

// distance from floor to the nearer of the car's current and next floor.
func distance(c *car.Car, floor int) int {
	d := abs(c.CurrentFloor() - floor)
	if next, ok := c.NextFloor(); ok {
		d = min(d, abs(next-floor))
	}
	return d
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
