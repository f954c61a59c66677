package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chorenet/internal/config"
	"chorenet/internal/database"
	"chorenet/internal/engine"
	"chorenet/internal/logging"
	"chorenet/internal/notify"
	"chorenet/internal/server"
	"chorenet/internal/store"
	ws "chorenet/internal/websocket"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	household, err := config.LoadHousehold(cfg.HouseholdPath, logger.With("component", "config"))
	if err != nil {
		logger.Error("failed to load household file", "path", cfg.HouseholdPath, "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	snapStore := store.NewSnapshotStore(db)

	// People and chores always come from the household file; only the
	// instance map survives restarts.
	persisted, err := snapStore.Load()
	if err != nil {
		logger.Error("failed to load persisted state", "error", err)
		os.Exit(1)
	}
	st := engine.NewStore(household.People, household.Chores, persisted.Instances)

	hub := ws.NewHub(logger.With("component", "websocket"))

	var sender notify.Sender
	if cfg.VAPIDPublicKey != "" && cfg.VAPIDPrivateKey != "" {
		sender = notify.NewPushService(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubscriber)
		logger.Info("web push enabled", "targets", len(household.Targets))
	} else {
		logger.Info("web push disabled, VAPID keys not configured")
	}
	dispatcher := notify.NewDispatcher(sender, household.Targets, hub, logger.With("component", "notify"))

	coord := engine.NewCoordinator(st, snapStore, dispatcher, cfg.TickInterval, logger.With("component", "engine"))
	coord.Start(context.Background())
	defer coord.Stop()

	srv := server.New(coord, hub, logger)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("Chorenet running at http://localhost:%s\n", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
