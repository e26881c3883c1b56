package sqldb

import (
	"context"

	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/users"

	"github.com/jmoiron/sqlx"
)

// Los Seed* son idempotentes: INSERT OR IGNORE en SQLite, ON CONFLICT DO NOTHING en Postgres.

func (db *DB) SeedPets(ctx context.Context, items []pets.Pet) error {
	if len(items) == 0 {
		return nil
	}
	return db.withTx(ctx, func(tx *sqlx.Tx) error {
		ib := db.flavor.NewInsertBuilder()
		ib.InsertIgnoreInto("pets")
		ib.Cols("id", "name", "type", "size", "activity_level", "maintenance_level", "budget")
		for _, p := range items {
			ib.Values(p.ID, p.Name, p.Type, p.Size, p.ActivityLevel, p.MaintenanceLevel, p.Budget)
		}
		_, err := execAffected(ctx, tx, ib)
		return err
	})
}

func (db *DB) SeedAdmin(ctx context.Context, username, password string) error {
	ib := db.flavor.NewInsertBuilder()
	ib.InsertIgnoreInto("admins")
	ib.Cols("username", "password")
	ib.Values(username, password)

	_, err := execAffected(ctx, db.x, ib)
	return err
}

func (db *DB) SeedUser(ctx context.Context, u users.User) error {
	ib := db.flavor.NewInsertBuilder()
	ib.InsertIgnoreInto("users")
	ib.Cols("username", "password_hash", "created_at")
	ib.Values(u.Username, u.PasswordHash, u.CreatedAt)

	_, err := execAffected(ctx, db.x, ib)
	return err
}
