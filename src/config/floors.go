package config

import "elevatorapi/src/types"

// FloorRange is the inclusive span of floors the building serves.
type FloorRange struct {
	Min int
	Max int
}

func (r FloorRange) Check(floor int) error {
	if floor < r.Min || floor > r.Max {
		return &types.FloorOutOfRangeError{Floor: floor, Min: r.Min, Max: r.Max}
	}
	return nil
}
