package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"pet-adoption-workflow/internal/adapters/adminapi"

	"github.com/spf13/cobra"
)

// remoteFlags son las credenciales para hablar con una API ya levantada.
type remoteFlags struct {
	url      string
	user     string
	password string
	timeout  time.Duration
	expected string
}

func (f *remoteFlags) bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.url, "api-url", os.Getenv("PETADMIN_API_URL"), "URL base de la API (default http://localhost:$PORT)")
	cmd.PersistentFlags().StringVar(&f.user, "user", envOr("PETADMIN_USER", "admin"), "usuario admin")
	cmd.PersistentFlags().StringVar(&f.password, "password", os.Getenv("PETADMIN_PASSWORD"), "contraseña admin")
	cmd.PersistentFlags().DurationVar(&f.timeout, "timeout", 10*time.Second, "timeout por request")
}

func (f *remoteFlags) client(e *env) (*adminapi.Client, error) {
	base := f.url
	if base == "" {
		base = "http://localhost:" + e.cfg.Port
	}
	return adminapi.New(adminapi.Options{
		BaseURL:  base,
		Username: f.user,
		Password: f.password,
		Timeout:  f.timeout,
	})
}

func newQuestionnairesCmd(e *env) *cobra.Command {
	var f remoteFlags

	cmd := &cobra.Command{
		Use:   "questionnaires",
		Short: "Modera cuestionarios contra una API en ejecución",
	}
	f.bind(cmd)

	pending := &cobra.Command{
		Use:   "pending",
		Short: "Lista los cuestionarios pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.client(e)
			if err != nil {
				return err
			}
			items, err := c.PendingQuestionnaires(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, items)
		},
	}

	approve := &cobra.Command{
		Use:   "approve <id> <pet-id>...",
		Short: "Aprueba un cuestionario otorgando mascotas",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			c, err := f.client(e)
			if err != nil {
				return err
			}
			out, err := c.ApproveQuestionnaire(cmd.Context(), ids[0], ids[1:])
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}

	reject := &cobra.Command{
		Use:   "reject <id>",
		Short: "Rechaza un cuestionario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			c, err := f.client(e)
			if err != nil {
				return err
			}
			out, err := c.RejectQuestionnaire(cmd.Context(), ids[0], f.expected)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
	reject.Flags().StringVar(&f.expected, "expected", "", "estado esperado (PENDING|APPROVED|REJECTED)")

	cmd.AddCommand(pending, approve, reject)
	return cmd
}

func newAdoptionsCmd(e *env) *cobra.Command {
	var f remoteFlags

	cmd := &cobra.Command{
		Use:   "adoptions",
		Short: "Modera solicitudes de adopción contra una API en ejecución",
	}
	f.bind(cmd)

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista todas las solicitudes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.client(e)
			if err != nil {
				return err
			}
			items, err := c.Adoptions(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, items)
		},
	}

	update := func(action string) *cobra.Command {
		sub := &cobra.Command{
			Use:   action + " <request-id>",
			Short: "Marca la solicitud como " + action,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				c, err := f.client(e)
				if err != nil {
					return err
				}
				out, err := c.UpdateAdoption(cmd.Context(), ids[0], action, f.expected)
				if err != nil {
					return err
				}
				return printJSON(cmd, out)
			},
		}
		sub.Flags().StringVar(&f.expected, "expected", "", "estado esperado (PENDING|APPROVED|REJECTED)")
		return sub
	}

	cmd.AddCommand(list, update("approve"), update("reject"))
	return cmd
}

func parseIDs(args []string) ([]int64, error) {
	out := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", a)
		}
		out = append(out, id)
	}
	return out, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
