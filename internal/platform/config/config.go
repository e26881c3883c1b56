// Package config carga la configuración del proceso desde env (opcionalmente desde un .env).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"pet-adoption-workflow/internal/platform/logger"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port string

	DBDriver string // sqlite | postgres | memory
	DBDSN    string // ruta del archivo para sqlite, URL para postgres

	Log logger.Options

	// LegacyOverwrite restaura el overwrite incondicional de Reject/UpdateStatus.
	LegacyOverwrite bool

	MigrateOnStart bool
	SeedOnStart    bool
	SeedFile       string // vacío = fixtures embebidos

	// AdminAuth=false deja las rutas /admin sin gate (modo dev).
	AdminAuth bool

	// Límite por IP para escrituras; RateLimitRPS=0 lo desactiva.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load lee un .env si existe (sin pisar variables ya definidas) y luego el entorno.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv arma la Config usando getenv (os.Getenv en prod, un map en tests).
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:     firstNonEmpty(getenv("PORT"), "8080"),
		DBDriver: strings.ToLower(firstNonEmpty(getenv("DB_DRIVER"), DriverSQLite)),
		DBDSN:    strings.TrimSpace(getenv("DB_DSN")),
		Log: logger.Options{
			Level:  logger.ParseLevel(getenv("LOG_LEVEL")),
			Format: logger.ParseFormat(getenv("LOG_FORMAT")),
			App:    firstNonEmpty(getenv("APP_NAME"), "pet-adoption-workflow"),
		},
		SeedFile: strings.TrimSpace(getenv("SEED_FILE")),
	}

	var err error
	if cfg.LegacyOverwrite, err = parseBool(getenv, "WORKFLOW_LEGACY_OVERWRITE", false); err != nil {
		return Config{}, err
	}
	if cfg.MigrateOnStart, err = parseBool(getenv, "MIGRATE_ON_START", true); err != nil {
		return Config{}, err
	}
	if cfg.SeedOnStart, err = parseBool(getenv, "SEED_ON_START", true); err != nil {
		return Config{}, err
	}
	if cfg.AdminAuth, err = parseBool(getenv, "ADMIN_AUTH", true); err != nil {
		return Config{}, err
	}

	if cfg.RateLimitRPS, err = parseFloat(getenv, "RATE_LIMIT_RPS", 10); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = parseInt(getenv, "RATE_LIMIT_BURST", 20); err != nil {
		return Config{}, err
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBDSN == "" {
			cfg.DBDSN = "pets.db"
		}
	case DriverPostgres:
		if cfg.DBDSN == "" {
			return Config{}, errors.New("DB_DSN is required for the postgres driver")
		}
	case DriverMemory:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func parseBool(getenv func(string) string, key string, def bool) (bool, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return v, nil
}

func parseFloat(getenv func(string) string, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s=%q", key, raw)
	}
	return v, nil
}

func parseInt(getenv func(string) string, key string, def int) (int, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s=%q", key, raw)
	}
	return v, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
