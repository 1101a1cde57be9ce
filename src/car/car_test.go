package car

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"elevatorapi/src/types"
)

func TestEqualUsesID(t *testing.T) {
	a := New(1, 0)
	b := New(1, 1)
	b.AddStop(4)
	if !a.Equal(b) {
		t.Errorf("cars with the same id should be equal")
	}
	if a.Equal(New(2, 0)) {
		t.Errorf("cars with different ids should not be equal")
	}
	if a.Equal(nil) {
		t.Errorf("a car should never equal nil")
	}
	if a.Key() != b.Key() {
		t.Errorf("Key() differs for the same id: %d != %d", a.Key(), b.Key())
	}
}

func TestNewCarIsIdleAtLobby(t *testing.T) {
	c := New(3, -1)
	if c.CurrentFloor() != -1 {
		t.Errorf("Expected floor -1, got %d", c.CurrentFloor())
	}
	if c.Direction() != types.Idle {
		t.Errorf("Expected idle, got %v", c.Direction())
	}
	if _, ok := c.NextFloor(); ok {
		t.Errorf("Expected no next floor")
	}
}

func TestAddStop(t *testing.T) {
	testCases := []struct {
		name      string
		floor     int
		adds      []int
		stops     []int
		direction types.Direction
	}{
		{"idle, above", 0, []int{3}, []int{3}, types.Ascending},
		{"idle, below", 0, []int{-1}, []int{-1}, types.Descending},
		{"idle, own floor", 2, []int{2}, []int{}, types.Idle},
		{"ascending, between", 0, []int{8, 7}, []int{7, 8}, types.Ascending},
		{"ascending, above", 0, []int{5, 7}, []int{5, 7}, types.Ascending},
		{"ascending, sorted", 0, []int{6, 2, 4, 1}, []int{1, 2, 4, 6}, types.Ascending},
		{"ascending, duplicate", 0, []int{2, 5, 2, 5}, []int{2, 5}, types.Ascending},
		{"ascending, below reverses after sweep", 2, []int{5, 0}, []int{5, 0}, types.Ascending},
		{"ascending, own floor reverses after sweep", 2, []int{5, 2}, []int{5, 2}, types.Ascending},
		{"ascending, second sweep sorted", 2, []int{5, 0, 3, 1}, []int{3, 5, 1, 0}, types.Ascending},
		{"ascending, extends first sweep", 3, []int{5, 1, 7}, []int{5, 7, 1}, types.Ascending},
		{"ascending, into second sweep", 3, []int{5, 1, 2}, []int{5, 2, 1}, types.Ascending},
		{"ascending, below second sweep", 3, []int{5, 1, -1}, []int{5, 1, -1}, types.Ascending},
		{"descending, between", 0, []int{-2, -1}, []int{-1, -2}, types.Descending},
		{"descending, sorted", 8, []int{1, 5, 3, 7}, []int{7, 5, 3, 1}, types.Descending},
		{"descending, above reverses after sweep", 4, []int{1, 6}, []int{1, 6}, types.Descending},
		{"descending, before reversal", 4, []int{1, 6, 2}, []int{2, 1, 6}, types.Descending},
		{"descending, second sweep ascending", 4, []int{1, 6, 5}, []int{1, 5, 6}, types.Descending},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(1, tc.floor)
			for _, f := range tc.adds {
				c.AddStop(f)
			}
			if !slices.Equal(c.Stops(), tc.stops) {
				t.Errorf("Expected stops %v, got %v", tc.stops, c.Stops())
			}
			if c.Direction() != tc.direction {
				t.Errorf("Expected %v, got %v", tc.direction, c.Direction())
			}
			if c.CurrentFloor() != tc.floor {
				t.Errorf("AddStop moved the car from %d to %d", tc.floor, c.CurrentFloor())
			}
		})
	}
}

func TestAddStopKeepsSweepOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 200; round++ {
		c := New(1, 0)
		ascending := rng.Intn(2) == 0
		for i := 0; i < 12; i++ {
			f := 1 + rng.Intn(20)
			if !ascending {
				f = -f
			}
			c.AddStop(f)
		}
		stops := c.Stops()
		for i := 1; i < len(stops); i++ {
			if ascending && stops[i] <= stops[i-1] {
				t.Fatalf("Ascending queue not strictly increasing: %v", stops)
			}
			if !ascending && stops[i] >= stops[i-1] {
				t.Fatalf("Descending queue not strictly decreasing: %v", stops)
			}
		}
	}
}

func TestAddStopQueueStaysDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := New(1, 0)
	for i := 0; i < 500; i++ {
		c.AddStop(rng.Intn(21) - 10)
		if i%7 == 0 {
			_ = c.MoveNext()
		}
		seen := make(map[int]bool)
		for _, s := range c.Stops() {
			if seen[s] {
				t.Fatalf("Duplicate stop %d in %v", s, c.Stops())
			}
			seen[s] = true
		}
		if next, ok := c.NextFloor(); ok && next == c.CurrentFloor() {
			t.Fatalf("Next floor equals current floor %d", next)
		}
	}
}

func TestMoveNext(t *testing.T) {
	c := New(1, 0)
	c.AddStop(2)
	c.AddStop(5)

	if err := c.MoveNext(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.CurrentFloor() != 2 || !slices.Equal(c.Stops(), []int{5}) {
		t.Errorf("Expected floor 2 with stops [5], got floor %d with stops %v", c.CurrentFloor(), c.Stops())
	}

	if err := c.MoveNext(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.CurrentFloor() != 5 || c.Direction() != types.Idle {
		t.Errorf("Expected idle at floor 5, got %v at floor %d", c.Direction(), c.CurrentFloor())
	}
}

func TestMoveNextReversesAfterSweep(t *testing.T) {
	c := New(1, 2)
	c.AddStop(5)
	c.AddStop(0)
	if err := c.MoveNext(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Direction() != types.Descending {
		t.Errorf("Expected descending after the first sweep, got %v", c.Direction())
	}
}

func TestMoveNextWhenIdle(t *testing.T) {
	c := New(4, 1)
	err := c.MoveNext()

	var noDest *types.NoDestinationError
	if !errors.As(err, &noDest) {
		t.Fatalf("Expected NoDestinationError, got %v", err)
	}
	if noDest.ID != 4 {
		t.Errorf("Expected car id 4 in error, got %d", noDest.ID)
	}
	if c.CurrentFloor() != 1 {
		t.Errorf("Idle move changed floor to %d", c.CurrentFloor())
	}
}

func TestViewIsSnapshot(t *testing.T) {
	c := New(2, 0)
	idle := c.View()
	if idle.NextFloor != nil || idle.Stops == nil || len(idle.Stops) != 0 {
		t.Errorf("Expected empty view, got %+v", idle)
	}

	c.AddStop(3)
	c.AddStop(6)
	view := c.View()
	view.Stops[0] = 99
	*view.NextFloor = 42

	if next, _ := c.NextFloor(); next != 3 {
		t.Errorf("Mutating the view changed the car: next floor %d", next)
	}
	if view.ID != 2 || view.Direction != types.Ascending {
		t.Errorf("Unexpected view %+v", view)
	}
}
