package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-workflow/internal/adapters/storage/postgres"
	"pet-adoption-workflow/internal/adapters/storage/sqlite"
	"pet-adoption-workflow/internal/platform/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migpgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migsqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

var ErrUnsupportedDriver = errors.New("migrations: unsupported driver")

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

type Options struct {
	Direction Direction // default Up
	Version   uint      // 0 = última (solo para Up)
	Logger    logger.Logger
}

// Run aplica las migraciones embebidas del driver sobre su propio handle de DB
// y lo cierra al terminar. ErrNoChange no es error.
func Run(ctx context.Context, driver, dsn string, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"component": "migrations", "driver": driver})

	m, err := open(ctx, driver, dsn)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			log.Warn("closing migrate instance", map[string]any{"source_err": srcErr, "db_err": dbErr})
		}
	}()
	m.Log = migrationLogger{log: log}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			select {
			case m.GracefulStop <- true:
			default:
			}
		case <-stop:
		}
	}()

	start := time.Now()
	switch {
	case opts.Direction == Down:
		err = m.Down()
	case opts.Version != 0:
		err = m.Migrate(opts.Version)
	default:
		err = m.Up()
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no new migrations to apply", nil)
		return nil
	}
	if err != nil {
		version, dirty, verr := m.Version()
		log.Error("migration failed", map[string]any{
			"err":     err,
			"version": version,
			"dirty":   dirty,
			"ver_err": verr,
		})
		return fmt.Errorf("migrate %s: %w", directionOf(opts), err)
	}

	version, _, _ := m.Version()
	log.Info("migrations applied", map[string]any{
		"direction": string(directionOf(opts)),
		"version":   version,
		"elapsed":   time.Since(start).String(),
	})
	return nil
}

func open(ctx context.Context, driver, dsn string) (*migrate.Migrate, error) {
	switch driver {
	case sqlite.DriverName:
		db, err := sqlite.Open(ctx, dsn)
		if err != nil {
			return nil, err
		}
		drv, err := migsqlite.WithInstance(db, &migsqlite.Config{})
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return withSource(drv, "sqlite", "sqlite")

	case postgres.DriverName:
		db, err := postgres.Open(ctx, dsn, postgres.Pool{MaxOpen: 2, MaxIdle: 1})
		if err != nil {
			return nil, err
		}
		drv, err := migpgx.WithInstance(db, &migpgx.Config{})
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return withSource(drv, "postgres", "pgx5")
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
}

func withSource(drv database.Driver, dir, name string) (*migrate.Migrate, error) {
	src, err := iofs.New(files, dir)
	if err != nil {
		_ = drv.Close()
		return nil, err
	}
	m, err := migrate.NewWithInstance("iofs", src, name, drv)
	if err != nil {
		_ = src.Close()
		_ = drv.Close()
		return nil, err
	}
	return m, nil
}

func directionOf(opts Options) Direction {
	if opts.Direction == Down {
		return Down
	}
	return Up
}

// migrationLogger adapta logger.Logger a migrate.Logger.
type migrationLogger struct {
	log logger.Logger
}

func (l migrationLogger) Verbose() bool { return true }

func (l migrationLogger) Printf(format string, v ...any) {
	l.log.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), nil)
}
