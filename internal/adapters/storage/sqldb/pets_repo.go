package sqldb

import (
	"context"

	"pet-adoption-workflow/internal/domain/pets"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
)

type PetsRepo struct {
	db *DB
}

func NewPetsRepo(db *DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	sb := r.db.flavor.NewSelectBuilder()
	sb.Select(petCols...)
	sb.From("pets AS p")
	sb.OrderBy("p.id")

	var rows []petRow
	if err := selectAll(ctx, r.db.x, &rows, sb); err != nil {
		return nil, err
	}
	return petsToDomain(rows), nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	return petByID(ctx, r.db.x, r.db.flavor, id)
}

func petByID(ctx context.Context, q sqlx.QueryerContext, flavor sqlbuilder.Flavor, id int64) (pets.Pet, error) {
	sb := flavor.NewSelectBuilder()
	sb.Select(petCols...)
	sb.From("pets AS p")
	sb.Where(sb.Equal("p.id", id))

	var row petRow
	if err := getOne(ctx, q, &row, sb); err != nil {
		return pets.Pet{}, err
	}
	return row.toDomain(), nil
}

// missingPetIDs devuelve los ids (únicos, en orden de entrada) sin fila en pets.
func missingPetIDs(ctx context.Context, q sqlx.QueryerContext, flavor sqlbuilder.Flavor, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sb := flavor.NewSelectBuilder()
	sb.Select("id")
	sb.From("pets")
	sb.Where(sb.In("id", toAny(ids)...))

	var found []int64
	if err := selectAll(ctx, q, &found, sb); err != nil {
		return nil, err
	}

	exists := make(map[int64]bool, len(found))
	for _, id := range found {
		exists[id] = true
	}

	var missing []int64
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if exists[id] || seen[id] {
			continue
		}
		seen[id] = true
		missing = append(missing, id)
	}
	return missing, nil
}
