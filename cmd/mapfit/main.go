package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mapfit "github.com/claude/mapfit"
	"github.com/claude/mapfit/internal/config"
	"github.com/claude/mapfit/internal/geolocate"
	"github.com/claude/mapfit/internal/server"
	"github.com/claude/mapfit/internal/storage"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("MapFit starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Open the slot store (migrations apply to the sqlite backend only)
	ctx := context.Background()
	var store storage.Store
	switch cfg.Database.Backend {
	case "sqlite":
		if err := storage.RunMigrations(cfg.Database.Path, "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrations applied")
		if *migrateOnly {
			log.Info("migrate-only: exiting")
			return
		}
		store, err = storage.NewSlotStore(ctx, cfg.Database.Path)
	case "file":
		store, err = storage.NewFileStore(cfg.Database.Path)
	}
	if err != nil {
		log.Error("failed to open store", "backend", cfg.Database.Backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	log.Info("store opened", "backend", cfg.Database.Backend, "path", cfg.Database.Path)

	// Load the persisted workout log (failure degrades to an empty log)
	session := server.NewSession(store, log)
	session.LoadFromStore(ctx)

	// Geolocation for the initial map center, when enabled
	var locator *geolocate.Locator
	if cfg.Geo.Enabled {
		locator = geolocate.New(cfg.Geo.Endpoint)
	}

	// Create server
	srv := server.New(session, locator, cfg.Map, log)

	// Serve embedded frontend
	webDist, err := fs.Sub(mapfit.WebFS, "web/dist")
	if err != nil {
		log.Error("failed to load embedded frontend", "error", err)
		os.Exit(1)
	}
	srv.SetFrontend(webDist)

	// Start server — tsnet or plain HTTP
	var listener net.Listener

	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
