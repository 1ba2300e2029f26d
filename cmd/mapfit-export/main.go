// mapfit-export dumps the persisted workout log to stdout, as JSON (the
// slot layout) or CSV, for backups and spreadsheet work.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/claude/mapfit/internal/config"
	"github.com/claude/mapfit/internal/storage"
	"github.com/claude/mapfit/internal/workout"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	format := flag.String("format", "json", "output format: json or csv")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *format != "json" && *format != "csv" {
		fmt.Fprintf(os.Stderr, "Usage: mapfit-export -config config.yaml [-format json|csv]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

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

	records, err := store.Load(ctx)
	if err != nil {
		log.Error("failed to load workout log", "error", err)
		os.Exit(1)
	}

	switch *format {
	case "json":
		payload, err := workout.EncodeLog(records)
		if err != nil {
			log.Error("encode failed", "error", err)
			os.Exit(1)
		}
		os.Stdout.Write(payload)
		fmt.Println()
	case "csv":
		if err := writeCSV(records); err != nil {
			log.Error("csv export failed", "error", err)
			os.Exit(1)
		}
	}

	log.Info("export done", "records", len(records), "format", *format)
}

func writeCSV(records []workout.Record) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"id", "kind", "lat", "lng", "distance_km", "duration_min", "created_at", "cadence", "pace", "elevation_gain_m", "speed"}); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for _, r := range records {
		row := []string{
			r.ID, string(r.Kind), f(r.Coords.Lat), f(r.Coords.Lng),
			f(r.DistanceKm), f(r.DurationMin), r.CreatedAt.Format(time.RFC3339),
			"", "", "", "",
		}
		switch r.Kind {
		case workout.Running:
			row[7], row[8] = f(r.Cadence), f(r.Pace)
		case workout.Cycling:
			row[9], row[10] = f(r.ElevationGainM), f(r.Speed)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
