// Package car holds the state machine of a single elevator car.
package car

import (
	"slices"

	"elevatorapi/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Car is one elevator. Direction and next floor are always derived from the
// stop queue, never stored.
type Car struct {
	id    int
	floor int
	stops []int
}

func New(id, lobbyFloor int) *Car {
	return &Car{
		id:    id,
		floor: lobbyFloor,
		stops: []int{},
	}
}

func (c *Car) ID() int { return c.id }

// Key is the identity of the car. It never changes with floor or queue state.
func (c *Car) Key() int { return c.id }

// Equal reports whether both values refer to the same car.
func (c *Car) Equal(other *Car) bool {
	return other != nil && c.id == other.id
}

func (c *Car) CurrentFloor() int { return c.floor }

// NextFloor returns the head of the stop queue. ok is false when the car is idle.
func (c *Car) NextFloor() (floor int, ok bool) {
	if len(c.stops) == 0 {
		return 0, false
	}
	return c.stops[0], true
}

func (c *Car) Stops() []int { return slices.Clone(c.stops) }

func (c *Car) NumStops() int { return len(c.stops) }

func (c *Car) Direction() types.Direction {
	return directionOf(c.floor, c.stops)
}

// AddStop commits the car to visit floor. Floors already queued are ignored,
// as is the car's own floor while it is idle. The range is checked by the caller.
func (c *Car) AddStop(floor int) {
	if slices.Contains(c.stops, floor) {
		return
	}
	c.stops = insertStop(c.floor, c.stops, floor)
}

// MoveNext advances the car to its next stop.
func (c *Car) MoveNext() error {
	if len(c.stops) == 0 {
		return &types.NoDestinationError{ID: c.id}
	}
	c.floor = c.stops[0]
	c.stops = slices.Delete(c.stops, 0, 1)
	return nil
}

// View returns a snapshot that shares no memory with the car.
func (c *Car) View() types.CarView {
	view := types.CarView{
		ID:           c.id,
		CurrentFloor: c.floor,
		Direction:    c.Direction(),
	}
	if err := deepcopy.Copy(&view.Stops, c.stops); err != nil {
		panic(err)
	}
	if view.Stops == nil {
		view.Stops = []int{}
	}
	if next, ok := c.NextFloor(); ok {
		view.NextFloor = &next
	}
	return view
}
