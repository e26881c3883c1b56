package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pet-adoption-workflow/internal/adapters/storage/migrations"
	"pet-adoption-workflow/internal/app"
	"pet-adoption-workflow/internal/platform/config"
	"pet-adoption-workflow/internal/platform/logger"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type env struct {
	cfg config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		e       env
	)

	root := &cobra.Command{
		Use:           "petadmin",
		Short:         "Administración del store de pet-adoption-workflow",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = logger.New(cfg.Log)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "archivo .env a cargar (default .env si existe)")

	root.AddCommand(
		newMigrateCmd(&e),
		newSeedCmd(&e),
		newServeCmd(&e),
		newQuestionnairesCmd(&e),
		newAdoptionsCmd(&e),
	)
	return root
}

func newMigrateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Aplica o revierte las migraciones embebidas",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(migrations.Up), string(migrations.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := migrations.Up
			if len(args) == 1 {
				switch migrations.Direction(args[0]) {
				case migrations.Up, migrations.Down:
					dir = migrations.Direction(args[0])
				default:
					return fmt.Errorf("unknown direction %q (want up or down)", args[0])
				}
			}
			return app.Migrate(cmd.Context(), e.cfg, e.log, dir)
		},
	}
	return cmd
}

func newSeedCmd(e *env) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga mascotas, admins y usuarios de ejemplo (idempotente)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if e.cfg.DBDriver == config.DriverMemory {
				return fmt.Errorf("seed needs a persistent DB_DRIVER (sqlite or postgres)")
			}
			if file != "" {
				e.cfg.SeedFile = file
			}

			st, err := app.OpenStorage(cmd.Context(), e.cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			return app.Seed(cmd.Context(), e.cfg, st, e.log)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "fixtures YAML (default: embebidos)")
	return cmd
}

func newServeCmd(e *env) *cobra.Command {
	var (
		port      string
		migrate   bool
		seedOnRun bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				e.cfg.Port = port
			}
			if cmd.Flags().Changed("migrate") {
				e.cfg.MigrateOnStart = migrate
			}
			if cmd.Flags().Changed("seed") {
				e.cfg.SeedOnStart = seedOnRun
			}
			return app.Serve(cmd.Context(), e.cfg, e.log)
		},
	}
	cmd.Flags().StringVar(&port, "port", "8080", "puerto HTTP (pisa PORT)")
	cmd.Flags().BoolVar(&migrate, "migrate", true, "migrar al arrancar (pisa MIGRATE_ON_START)")
	cmd.Flags().BoolVar(&seedOnRun, "seed", true, "sembrar al arrancar (pisa SEED_ON_START)")
	return cmd
}
