package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/users"
	"pet-adoption-workflow/internal/platform/logger"
	"pet-adoption-workflow/internal/platform/validation"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Target es cualquier store capaz de recibir datos de referencia de forma idempotente.
type Target interface {
	SeedPets(ctx context.Context, items []pets.Pet) error
	SeedAdmin(ctx context.Context, username, password string) error
	SeedUser(ctx context.Context, u users.User) error
}

type Fixtures struct {
	Users  []Credential `yaml:"users" validate:"dive"`
	Admins []Credential `yaml:"admins" validate:"dive"`
	Pets   []PetFixture `yaml:"pets" validate:"dive"`
}

type Credential struct {
	Username string `yaml:"username" validate:"required"`
	Password string `yaml:"password" validate:"required"`
}

type PetFixture struct {
	ID               int64  `yaml:"id" validate:"gt=0"`
	Name             string `yaml:"name" validate:"required"`
	Type             string `yaml:"type" validate:"required"`
	Size             string `yaml:"size"`
	ActivityLevel    string `yaml:"activity_level"`
	MaintenanceLevel string `yaml:"maintenance_level"`
	Budget           string `yaml:"budget"`
}

func Default() (Fixtures, error) {
	return Parse(defaultFixtures)
}

// Load lee fixtures desde un archivo; path vacío usa los embebidos.
func Load(path string) (Fixtures, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, err
	}
	return Parse(raw)
}

func Parse(raw []byte) (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}
	if err := validation.Struct(f); err != nil {
		return Fixtures{}, fmt.Errorf("fixtures: %w", err)
	}
	return f, nil
}

func (f Fixtures) PetList() []pets.Pet {
	out := make([]pets.Pet, 0, len(f.Pets))
	for _, p := range f.Pets {
		out = append(out, pets.Pet{
			ID:               p.ID,
			Name:             p.Name,
			Type:             p.Type,
			Size:             p.Size,
			ActivityLevel:    p.ActivityLevel,
			MaintenanceLevel: p.MaintenanceLevel,
			Budget:           p.Budget,
		})
	}
	return out
}

// Apply escribe los fixtures en el target. Las contraseñas de usuarios se guardan como bcrypt;
// las de admins quedan en texto plano porque así las compara el verificador.
func Apply(ctx context.Context, t Target, f Fixtures, log logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}

	if err := t.SeedPets(ctx, f.PetList()); err != nil {
		return fmt.Errorf("seed pets: %w", err)
	}
	for _, a := range f.Admins {
		if err := t.SeedAdmin(ctx, a.Username, a.Password); err != nil {
			return fmt.Errorf("seed admin %q: %w", a.Username, err)
		}
	}

	now := time.Now().UTC()
	for _, u := range f.Users {
		hash, err := users.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
		if err := t.SeedUser(ctx, users.User{Username: u.Username, PasswordHash: hash, CreatedAt: now}); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
	}

	log.Info("seed applied", map[string]any{
		"pets":   len(f.Pets),
		"admins": len(f.Admins),
		"users":  len(f.Users),
	})
	return nil
}
