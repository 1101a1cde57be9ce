package types

import (
	"errors"
	"fmt"
)

// ErrNoCandidate means no car could be matched to a call. Every car is Idle,
// Ascending or Descending, so reaching it points at a broken state machine.
var ErrNoCandidate = errors.New("no car can serve the call")

type FloorOutOfRangeError struct {
	Floor int
	Min   int
	Max   int
}

func (e *FloorOutOfRangeError) Error() string {
	return fmt.Sprintf("floor %d out of range: floorNumber must be between %d and %d", e.Floor, e.Min, e.Max)
}

type CarNotFoundError struct {
	ID int
}

func (e *CarNotFoundError) Error() string {
	return fmt.Sprintf("car #%d not found", e.ID)
}

type NoDestinationError struct {
	ID int
}

func (e *NoDestinationError) Error() string {
	return fmt.Sprintf("car #%d has no destination", e.ID)
}
