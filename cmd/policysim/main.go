// Command policysim runs policy sentiment simulations against a synthetic
// city population, from the terminal or as an HTTP service.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/talgya/urban-sandbox/internal/config"
	"github.com/talgya/urban-sandbox/internal/engine"
	"github.com/talgya/urban-sandbox/internal/persistence"
	"github.com/talgya/urban-sandbox/internal/regions"
)

var (
	configPath string
	logLevel   string

	cfg *config.Config
)

// rootCmd is the base command. Subcommands live in cmd_*.go.
var rootCmd = &cobra.Command{
	Use:   "policysim",
	Short: "Simulate public sentiment toward a city policy",
	Long: `policysim scores a policy proposal against a synthetic population,
then reports support, herding, risk assessments, citizen voices and a
multi-year sentiment trend.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadFromEnv(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.Log.Level = logLevel
		}
		cfg = loaded
		setupLogging(cmd.ErrOrStderr(), cfg.Log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(samplesCmd)
	rootCmd.AddCommand(regionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, lc config.LogConfig) {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lc.SlogLevel(),
	}))
	slog.SetDefault(logger)
}

// newSimulation builds a simulation from config. adj may be nil.
func newSimulation(population int, seed int64, adj *regions.Adjuster) (*engine.Simulation, error) {
	if population == 0 {
		population = cfg.Simulation.Population
	}
	if seed == 0 {
		seed = cfg.Simulation.Seed
	}
	return engine.NewSimulation(engine.Config{
		Population: population,
		Seed:       seed,
		PhaseDelay: cfg.Simulation.PhaseDelay(),
		Regions:    adj,
	})
}

// openArchive opens the run archive, creating its directory.
func openArchive() (*persistence.DB, error) {
	if dir := filepath.Dir(cfg.Storage.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := persistence.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	slog.Debug("archive opened", "path", cfg.Storage.Path)
	return db, nil
}

// newAdjuster returns a regional adjuster backed by redis when configured,
// else by memory. The returned close func is never nil.
func newAdjuster(ctx context.Context) (*regions.Adjuster, func(), error) {
	if cfg.Redis.Addr == "" {
		return regions.NewAdjuster(nil), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}

	key := cfg.Redis.Key
	if key == "" {
		key = regions.DefaultRedisKey
	}
	slog.Info("regional cache on redis", "addr", cfg.Redis.Addr, "key", key)
	return regions.NewAdjuster(regions.NewRedisCache(client, key)), func() { client.Close() }, nil
}
