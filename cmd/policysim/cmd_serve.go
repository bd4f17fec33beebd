package main

import (
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/talgya/urban-sandbox/internal/api"
	"github.com/talgya/urban-sandbox/internal/narrative"
	"github.com/talgya/urban-sandbox/internal/persistence"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adj, closeCache, err := newAdjuster(ctx)
	if err != nil {
		return err
	}
	defer closeCache()

	seed := cfg.Simulation.Seed
	var db *persistence.DB
	if cfg.Storage.Enabled {
		db, err = openArchive()
		if err != nil {
			return err
		}
		defer db.Close()

		// Reuse the last reseeded population across restarts unless a seed is pinned.
		if seed == 0 {
			if v, err := db.GetMeta("seed"); err == nil {
				if n, err := strconv.ParseInt(v, 10, 64); err == nil {
					seed = n
					slog.Info("restoring population seed", "seed", seed)
				}
			}
		}
	}

	sim, err := newSimulation(0, seed, adj)
	if err != nil {
		return err
	}
	if db != nil {
		if err := db.SaveMeta("seed", strconv.FormatInt(sim.Seed(), 10)); err != nil {
			slog.Warn("save seed failed", "error", err)
		}
	}

	port := cfg.Server.Port
	if servePort != 0 {
		port = servePort
	}

	srv := &api.Server{
		Sim:            sim,
		DB:             db,
		Port:           port,
		AdminKey:       cfg.Server.AdminKey,
		RatePerMinute:  cfg.Server.RatePerMinute,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		DefaultYears:   cfg.Simulation.DefaultYears,
		DefaultLocale:  narrative.ParseLocale(cfg.Simulation.DefaultLocale),
	}
	return srv.Start(ctx)
}
