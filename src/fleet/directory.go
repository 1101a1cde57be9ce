// Package fleet owns every car in the building.
package fleet

import (
	"log/slog"
	"slices"

	"elevatorapi/src/car"
)

// Directory maps car ids 1..n to cars. Cars are created once and only mutated
// in place afterwards.
type Directory struct {
	cars  []*car.Car
	byKey map[int]*car.Car
}

func NewDirectory(carCount, lobbyFloor int) *Directory {
	dir := &Directory{
		cars:  make([]*car.Car, 0, carCount),
		byKey: make(map[int]*car.Car, carCount),
	}
	for id := 1; id <= carCount; id++ {
		c := car.New(id, lobbyFloor)
		dir.cars = append(dir.cars, c)
		dir.byKey[c.Key()] = c
	}
	slog.Debug("Car directory initialized", "cars", carCount, "lobbyFloor", lobbyFloor)
	return dir
}

// GetAll returns the cars ordered by ascending id.
func (dir *Directory) GetAll() []*car.Car {
	return slices.Clone(dir.cars)
}

func (dir *Directory) GetByID(id int) (*car.Car, bool) {
	c, ok := dir.byKey[id]
	return c, ok
}

func (dir *Directory) Len() int {
	return len(dir.cars)
}
