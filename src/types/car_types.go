package types

import "fmt"

type Direction int

const (
	Idle Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return "idle"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "idle":
		*d = Idle
	case "ascending":
		*d = Ascending
	case "descending":
		*d = Descending
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// CarView is a read-only snapshot of a car, safe to hand out of the fleet manager.
type CarView struct {
	ID           int       `json:"id"`
	CurrentFloor int       `json:"currentFloor"`
	NextFloor    *int      `json:"nextFloor"` // nil when the car has no stops
	Stops        []int     `json:"stops"`
	Direction    Direction `json:"direction"`
}
