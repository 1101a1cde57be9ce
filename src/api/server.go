// Package api exposes the dispatcher over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"elevatorapi/src/types"
)

// CarService is the dispatcher as seen by the HTTP layer.
type CarService interface {
	GetAll() []types.CarView
	GetByID(carID int) (types.CarView, error)
	CallCar(floor int) (types.CarView, error)
	AddStop(carID, floor int) (types.CarView, error)
	MoveCar(carID int) (types.CarView, error)
}

type server struct {
	cars CarService
}

// NewHandler registers the routes:
//   - GET  /health
//   - GET  /cars
//   - GET  /cars/{id}
//   - POST /cars/call/{floor}
//   - POST /cars/{id}/stops/{floor}
//   - POST /cars/{id}/move
func NewHandler(cars CarService) http.Handler {
	s := &server{cars: cars}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("GET /cars", s.getAll)
	mux.HandleFunc("GET /cars/{id}", s.getByID)
	// /cars/call/{floor} and /cars/{id}/move overlap on /cars/call/move,
	// so both go through one pattern.
	mux.HandleFunc("POST /cars/{id}/{action}", s.carAction)
	mux.HandleFunc("POST /cars/{id}/stops/{floor}", s.addStop)
	return withRequestLog(mux)
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) getAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cars.GetAll())
}

func (s *server) getByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt(w, "id", r.PathValue("id"))
	if !ok {
		return
	}
	respond(w, r, func() (types.CarView, error) { return s.cars.GetByID(id) })
}

func (s *server) carAction(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.PathValue("id") == "call":
		s.callCar(w, r, r.PathValue("action"))
	case r.PathValue("action") == "move":
		s.moveCar(w, r, r.PathValue("id"))
	default:
		http.NotFound(w, r)
	}
}

func (s *server) callCar(w http.ResponseWriter, r *http.Request, rawFloor string) {
	floor, ok := parseInt(w, "floor", rawFloor)
	if !ok {
		return
	}
	respond(w, r, func() (types.CarView, error) { return s.cars.CallCar(floor) })
}

func (s *server) addStop(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt(w, "id", r.PathValue("id"))
	if !ok {
		return
	}
	floor, ok := parseInt(w, "floor", r.PathValue("floor"))
	if !ok {
		return
	}
	respond(w, r, func() (types.CarView, error) { return s.cars.AddStop(id, floor) })
}

func (s *server) moveCar(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseInt(w, "id", rawID)
	if !ok {
		return
	}
	respond(w, r, func() (types.CarView, error) { return s.cars.MoveCar(id) })
}

func respond(w http.ResponseWriter, r *http.Request, op func() (types.CarView, error)) {
	view, err := op()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func parseInt(w http.ResponseWriter, name, raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: name + " must be an integer"})
		return 0, false
	}
	return n, true
}

type errorBody struct {
	Error string `json:"error"`
}

// statusOf maps dispatcher errors to HTTP status codes. A floor outside the
// building is reported as not found, like a missing car.
func statusOf(err error) int {
	var notFound *types.CarNotFoundError
	var outOfRange *types.FloorOutOfRangeError
	var noDest *types.NoDestinationError
	switch {
	case errors.As(err, &notFound), errors.As(err, &outOfRange):
		return http.StatusNotFound
	case errors.As(err, &noDest):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("Writing response failed", "err", err)
	}
}
