package dispatcher

import (
	"log/slog"

	"elevatorapi/src/config"
	"elevatorapi/src/fleet"
	"elevatorapi/src/types"
)

// Dispatcher assigns calls to cars and forwards stop and move requests.
// Every operation runs on the fleet manager, so assignments never race.
type Dispatcher struct {
	mgr    *fleet.Mgr
	floors config.FloorRange
}

func New(mgr *fleet.Mgr, floors config.FloorRange) *Dispatcher {
	return &Dispatcher{mgr: mgr, floors: floors}
}

// CallCar picks the car best suited to serve floor and adds the stop to it.
func (d *Dispatcher) CallCar(floor int) (types.CarView, error) {
	if err := d.floors.Check(floor); err != nil {
		return types.CarView{}, err
	}

	var view types.CarView
	var err error
	d.mgr.Exec(func(dir *fleet.Directory) {
		assignee, selErr := selectCar(dir.GetAll(), floor)
		if selErr != nil {
			err = selErr
			return
		}
		assignee.AddStop(floor)
		view = assignee.View()
	})
	if err != nil {
		return types.CarView{}, err
	}
	slog.Info("Call assigned", "floor", floor, "car", view.ID, "stops", view.Stops)
	return view, nil
}

func (d *Dispatcher) AddStop(carID, floor int) (types.CarView, error) {
	if err := d.floors.Check(floor); err != nil {
		return types.CarView{}, err
	}

	var view types.CarView
	var err error
	d.mgr.Exec(func(dir *fleet.Directory) {
		c, ok := dir.GetByID(carID)
		if !ok {
			err = &types.CarNotFoundError{ID: carID}
			return
		}
		c.AddStop(floor)
		view = c.View()
	})
	if err != nil {
		return types.CarView{}, err
	}
	slog.Debug("Stop added", "car", carID, "floor", floor, "stops", view.Stops)
	return view, nil
}

func (d *Dispatcher) MoveCar(carID int) (types.CarView, error) {
	var view types.CarView
	var err error
	d.mgr.Exec(func(dir *fleet.Directory) {
		c, ok := dir.GetByID(carID)
		if !ok {
			err = &types.CarNotFoundError{ID: carID}
			return
		}
		if err = c.MoveNext(); err != nil {
			return
		}
		view = c.View()
	})
	if err != nil {
		return types.CarView{}, err
	}
	slog.Debug("Car moved", "car", carID, "floor", view.CurrentFloor, "direction", view.Direction)
	return view, nil
}

func (d *Dispatcher) GetByID(carID int) (types.CarView, error) {
	var view types.CarView
	var err error
	d.mgr.Exec(func(dir *fleet.Directory) {
		c, ok := dir.GetByID(carID)
		if !ok {
			err = &types.CarNotFoundError{ID: carID}
			return
		}
		view = c.View()
	})
	return view, err
}

func (d *Dispatcher) GetAll() []types.CarView {
	views := []types.CarView{}
	d.mgr.Exec(func(dir *fleet.Directory) {
		for _, c := range dir.GetAll() {
			views = append(views, c.View())
		}
	})
	return views
}
