// Command client walks a running elevator API through a short demo.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"time"

	"elevatorapi/src/types"

	"github.com/eiannone/keyboard"
)

type demo struct {
	client *http.Client
	base   string
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "Base URL of the elevator API")
	flag.Parse()

	d := demo{client: &http.Client{Timeout: 5 * time.Second}, base: *addr}
	if err := d.run(); err != nil {
		exit(fmt.Sprintf("Request failed (%v): verify that the api is running.", err))
		return
	}
	exit("All done.")
}

func (d demo) run() error {
	fmt.Println("Checking health ...")
	resp, err := d.request(http.MethodGet, "/health")
	if err != nil {
		return err
	}
	resp.Body.Close()
	fmt.Println()

	fmt.Println("This simulates a building with two elevators, a basement floor, a lobby, " +
		"and 5 floors above it. Both cars start at the lobby by default.")
	fmt.Println()

	for _, id := range []int{1, 2} {
		fmt.Printf("Car #%d initial state ...\n", id)
		if _, err := d.car(http.MethodGet, fmt.Sprintf("/cars/%d", id)); err != nil {
			return err
		}
	}
	fmt.Println()

	fmt.Println("Requesting car for floor #1 ...")
	called, err := d.car(http.MethodPost, "/cars/call/1")
	if err != nil {
		return err
	}
	fmt.Println()

	fmt.Printf("Moving car #%d to next stop ...\n", called.ID)
	if _, err := d.car(http.MethodPost, fmt.Sprintf("/cars/%d/move", called.ID)); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func (d demo) request(method, path string) (*http.Response, error) {
	req, err := http.NewRequest(method, d.base+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%s %s returned %s", method, path, resp.Status)
	}
	return resp, nil
}

// car performs the request and prints the returned car.
func (d demo) car(method, path string) (types.CarView, error) {
	var view types.CarView
	resp, err := d.request(method, path)
	if err != nil {
		return view, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return view, err
	}
	out, _ := json.Marshal(view)
	fmt.Printf("Response: %s\n", out)
	return view, nil
}

func exit(message string) {
	fmt.Println(message)
	fmt.Println("Press any key to exit...")
	if _, _, err := keyboard.GetSingleKey(); err != nil {
		fmt.Println("Reading key failed:", err)
	}
}
