package sqldb

import (
	"context"
	"time"

	"pet-adoption-workflow/internal/domain/adoptions"
	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/workflow"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
)

type AdoptionsStore struct {
	db *DB
}

func NewAdoptionsStore(db *DB) *AdoptionsStore {
	return &AdoptionsStore{db: db}
}

func (s *AdoptionsStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx adoptions.Tx) error) error {
	return s.db.withTx(ctx, func(tx *sqlx.Tx) error {
		return fn(ctx, &adoptionsTx{tx: tx, flavor: s.db.flavor})
	})
}

func (s *AdoptionsStore) List(ctx context.Context) ([]adoptions.Request, error) {
	sb := s.db.flavor.NewSelectBuilder()
	sb.Select(adoptionCols...)
	sb.From("adoptions AS a")
	sb.OrderBy("a.request_id")

	var rows []adoptionRow
	if err := selectAll(ctx, s.db.x, &rows, sb); err != nil {
		return nil, err
	}
	return adoptionsToDomain(rows), nil
}

func (s *AdoptionsStore) ListByUsername(ctx context.Context, username string) ([]adoptions.Request, error) {
	sb := s.db.flavor.NewSelectBuilder()
	sb.Select(adoptionCols...)
	sb.From("adoptions AS a")
	sb.Where(sb.Equal("a.username", username))
	sb.OrderBy("a.request_id")

	var rows []adoptionRow
	if err := selectAll(ctx, s.db.x, &rows, sb); err != nil {
		return nil, err
	}
	return adoptionsToDomain(rows), nil
}

type adoptionsTx struct {
	tx     *sqlx.Tx
	flavor sqlbuilder.Flavor
}

func (t *adoptionsTx) GetPet(ctx context.Context, id int64) (pets.Pet, error) {
	return petByID(ctx, t.tx, t.flavor, id)
}

func (t *adoptionsTx) Insert(ctx context.Context, r adoptions.Request) (int64, error) {
	ib := t.flavor.NewInsertBuilder()
	ib.InsertInto("adoptions")
	ib.Cols("pet_id", "pet_name", "username", "status", "created_at", "updated_at")
	ib.Values(r.PetID, r.PetName, r.Username, string(r.Status), r.CreatedAt, r.UpdatedAt)

	return insertReturning(ctx, t.tx, ib, "request_id")
}

func (t *adoptionsTx) Get(ctx context.Context, id int64) (adoptions.Request, error) {
	sb := t.flavor.NewSelectBuilder()
	sb.Select(adoptionCols...)
	sb.From("adoptions AS a")
	sb.Where(sb.Equal("a.request_id", id))

	var row adoptionRow
	if err := getOne(ctx, t.tx, &row, sb); err != nil {
		return adoptions.Request{}, err
	}
	return row.toDomain(), nil
}

func (t *adoptionsTx) CompareAndSetStatus(ctx context.Context, id int64, from, to workflow.Status, at time.Time) (bool, error) {
	ub := t.flavor.NewUpdateBuilder()
	ub.Update("adoptions")
	ub.Set(ub.Assign("status", string(to)), ub.Assign("updated_at", at))
	ub.Where(ub.Equal("request_id", id), ub.Equal("status", string(from)))

	n, err := execAffected(ctx, t.tx, ub)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
