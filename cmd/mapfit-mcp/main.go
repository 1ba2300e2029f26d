// mapfit-mcp serves the workout log to MCP clients over stdio. With -remote
// it reads through the REST API of a running instance; otherwise it opens
// the local slot store read-only alongside the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/mapfit/internal/config"
	"github.com/claude/mapfit/internal/mcp"
	"github.com/claude/mapfit/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	remote := flag.String("remote", "", "base URL of a running MapFit instance (uses the REST API instead of the local store)")
	flag.Parse()

	// stdout is the MCP transport, logs must go to stderr
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	if *remote != "" {
		ds = mcp.NewHTTPClient(*remote)
		log.Info("mcp server starting", "mode", "remote", "url", *remote)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		ctx := context.Background()
		var store storage.Store
		switch cfg.Database.Backend {
		case "sqlite":
			store, err = storage.NewSlotStore(ctx, cfg.Database.Path)
		case "file":
			store, err = storage.NewFileStore(cfg.Database.Path)
		}
		if err != nil {
			log.Error("failed to open store", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		ds = mcp.NewStoreSource(store)
		log.Info("mcp server starting", "mode", "local", "path", cfg.Database.Path)
	}

	s := mcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "mcp server error: %v\n", err)
		os.Exit(1)
	}
}
