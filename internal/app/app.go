// Package app arma el proceso: storage según config, migraciones, seed y servidor HTTP.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pet-adoption-workflow/internal/adapters/storage/memory"
	"pet-adoption-workflow/internal/adapters/storage/migrations"
	"pet-adoption-workflow/internal/adapters/storage/postgres"
	"pet-adoption-workflow/internal/adapters/storage/seed"
	"pet-adoption-workflow/internal/adapters/storage/sqldb"
	"pet-adoption-workflow/internal/adapters/storage/sqlite"
	"pet-adoption-workflow/internal/domain/workflow"
	"pet-adoption-workflow/internal/middleware"
	"pet-adoption-workflow/internal/platform/config"
	"pet-adoption-workflow/internal/platform/logger"
	"pet-adoption-workflow/internal/platform/metrics"
	"pet-adoption-workflow/internal/router"
)

// Storage es el store relacional elegido por DB_DRIVER. Exactamente uno de los dos campos es no-nil.
type Storage struct {
	SQL    *sqldb.DB
	Memory *memory.DB
}

func (s Storage) Close() error {
	if s.SQL != nil {
		return s.SQL.Close()
	}
	return nil
}

func (s Storage) seedTarget() seed.Target {
	if s.SQL != nil {
		return s.SQL
	}
	return s.Memory
}

// driverName traduce DB_DRIVER al nombre registrado en database/sql.
func driverName(cfg config.Config) string {
	if cfg.DBDriver == config.DriverPostgres {
		return postgres.DriverName
	}
	return sqlite.DriverName
}

// Migrate aplica las migraciones embebidas. En modo memory no hay nada que migrar.
func Migrate(ctx context.Context, cfg config.Config, log logger.Logger, dir migrations.Direction) error {
	if cfg.DBDriver == config.DriverMemory {
		log.Info("memory driver: skipping migrations", nil)
		return nil
	}
	return migrations.Run(ctx, driverName(cfg), cfg.DBDSN, migrations.Options{
		Direction: dir,
		Logger:    log,
	})
}

func OpenStorage(ctx context.Context, cfg config.Config) (Storage, error) {
	switch cfg.DBDriver {
	case config.DriverMemory:
		return Storage{Memory: memory.NewDB()}, nil
	case config.DriverSQLite:
		raw, err := sqlite.Open(ctx, cfg.DBDSN)
		if err != nil {
			return Storage{}, fmt.Errorf("open sqlite: %w", err)
		}
		return Storage{SQL: sqldb.New(raw, sqlite.DriverName)}, nil
	case config.DriverPostgres:
		raw, err := postgres.Open(ctx, cfg.DBDSN, postgres.DefaultPool())
		if err != nil {
			return Storage{}, fmt.Errorf("open postgres: %w", err)
		}
		return Storage{SQL: sqldb.New(raw, postgres.DriverName)}, nil
	}
	return Storage{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}

// Seed carga fixtures (SEED_FILE o los embebidos). Es idempotente.
func Seed(ctx context.Context, cfg config.Config, st Storage, log logger.Logger) error {
	f, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}
	return seed.Apply(ctx, st.seedTarget(), f, log)
}

// Serve migra/siembra según config, levanta el servidor y lo apaga cuando ctx se cancela.
func Serve(ctx context.Context, cfg config.Config, log logger.Logger) error {
	if cfg.MigrateOnStart {
		if err := Migrate(ctx, cfg, log, migrations.Up); err != nil {
			return err
		}
	}

	st, err := OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn("closing storage", map[string]any{"err": err})
		}
	}()

	// memory arranca vacío: siempre se siembra
	if cfg.SeedOnStart || st.Memory != nil {
		if err := Seed(ctx, cfg, st, log); err != nil {
			return err
		}
	}

	if cfg.LegacyOverwrite {
		log.Warn("legacy overwrite enabled: APPROVED/REJECTED can be overwritten", nil)
	}
	if !cfg.AdminAuth {
		log.Warn("admin auth disabled (dev mode)", nil)
	}

	handler := router.NewRouter(router.Options{
		DB:        st.SQL,
		Memory:    st.Memory,
		AdminAuth: cfg.AdminAuth,
		RateLimit: middleware.RateLimitConfig{RPS: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
		Machine:   workflow.Machine{AllowOverwrite: cfg.LegacyOverwrite},
		Logger:    log,
		Metrics:   metrics.New(),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr(), "driver": cfg.DBDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
