package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elevatorapi/src/api"
	"elevatorapi/src/config"
	"elevatorapi/src/dispatcher"
	"elevatorapi/src/fleet"
	"elevatorapi/src/logger"
)

func main() {
	configPath := flag.String("config", "elevator.yaml", "Path to the YAML settings file")
	envPath := flag.String("env", ".env", "Path to a .env file with ELEVATOR_* overrides")
	flag.Parse()

	if err := run(*configPath, *envPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, envPath string) error {
	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		return err
	}
	logFile, err := logger.Init(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	mgr := fleet.StartMgr(fleet.NewDirectory(cfg.CarCount, cfg.LobbyFloor))
	defer mgr.Close()
	d := dispatcher.New(mgr, cfg.Floors())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewHandler(d),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Elevator API listening",
			"addr", cfg.ListenAddr,
			"cars", cfg.CarCount,
			"floors", fmt.Sprintf("%d..%d", cfg.MinFloor, cfg.MaxFloor),
			"lobby", cfg.LobbyFloor)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
