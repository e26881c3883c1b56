package memory

import (
	"context"
	"time"

	"pet-adoption-workflow/internal/domain/adoptions"
	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/workflow"
)

type AdoptionsStore struct {
	db *DB
}

func NewAdoptionsStore(db *DB) *AdoptionsStore {
	return &AdoptionsStore{db: db}
}

func (s *AdoptionsStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx adoptions.Tx) error) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	return s.db.runInTx(func(st *state) error {
		return fn(ctx, &adoptionsTx{st: st})
	})
}

func (s *AdoptionsStore) List(ctx context.Context) ([]adoptions.Request, error) {
	return s.list(ctx, func(adoptions.Request) bool { return true })
}

func (s *AdoptionsStore) ListByUsername(ctx context.Context, username string) ([]adoptions.Request, error) {
	return s.list(ctx, func(r adoptions.Request) bool { return r.Username == username })
}

// list devuelve en orden de request_id (el slice ya está en orden de inserción).
func (s *AdoptionsStore) list(ctx context.Context, keep func(adoptions.Request) bool) ([]adoptions.Request, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	out := make([]adoptions.Request, 0)
	s.db.read(func(st *state) {
		for _, r := range st.adoptions {
			if keep(r) {
				out = append(out, r)
			}
		}
	})
	return out, nil
}

type adoptionsTx struct {
	st *state
}

func (t *adoptionsTx) GetPet(ctx context.Context, id int64) (pets.Pet, error) {
	p, ok := t.st.petByID(id)
	if !ok {
		return pets.Pet{}, workflow.ErrNotFound
	}
	return p, nil
}

func (t *adoptionsTx) Insert(ctx context.Context, r adoptions.Request) (int64, error) {
	r.ID = t.st.nextRequestID
	t.st.nextRequestID++
	t.st.adoptions = append(t.st.adoptions, r)
	return r.ID, nil
}

func (t *adoptionsTx) Get(ctx context.Context, id int64) (adoptions.Request, error) {
	i := t.st.adoptionIndex(id)
	if i < 0 {
		return adoptions.Request{}, workflow.ErrNotFound
	}
	return t.st.adoptions[i], nil
}

func (t *adoptionsTx) CompareAndSetStatus(ctx context.Context, id int64, from, to workflow.Status, at time.Time) (bool, error) {
	i := t.st.adoptionIndex(id)
	if i < 0 || t.st.adoptions[i].Status != from {
		return false, nil
	}
	t.st.adoptions[i].Status = to
	t.st.adoptions[i].UpdatedAt = at
	return true, nil
}
