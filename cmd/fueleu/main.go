package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mhaugsand/fueleu/internal/config"
	"github.com/mhaugsand/fueleu/internal/domain/banking"
	"github.com/mhaugsand/fueleu/internal/domain/pooling"
	"github.com/mhaugsand/fueleu/internal/domain/route"
	"github.com/mhaugsand/fueleu/internal/httpapi"
	"github.com/mhaugsand/fueleu/internal/logging"
	"github.com/mhaugsand/fueleu/internal/metrics"
	"github.com/mhaugsand/fueleu/internal/seed"
	"github.com/mhaugsand/fueleu/internal/sqlite"
)

func main() {
	// Best effort; a missing .env is fine.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "fueleu",
		Short:         "FuelEU Maritime compliance record keeper",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Log.Level)

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			services := httpapi.Services{
				Routes:  route.NewService(sqlite.NewRouteRepository(db), logger),
				Banking: banking.NewService(sqlite.NewBankingRepository(db), logger),
				Pooling: pooling.NewService(sqlite.NewPoolRepository(db), sqlite.NewMemberRepository(db), logger),
			}

			server := &http.Server{
				Addr:    cfg.Server.Addr(),
				Handler: httpapi.NewRouter(services, logger, metrics.New()),
			}

			go func() {
				logger.Info().Str("addr", server.Addr).Msg("server listening")
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error().Err(err).Msg("server error")
				}
			}()

			waitForShutdown(logger, server)
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample dataset into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Log.Level)

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			return seed.Run(cmd.Context(), db, logger)
		},
	}
}

func openDB(cfg config.Config) (*sqlite.DB, error) {
	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return nil, fmt.Errorf("prepare database path: %w", err)
	}
	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger zerolog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info().Msg("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}
