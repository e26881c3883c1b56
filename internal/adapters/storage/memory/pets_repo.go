package memory

import (
	"context"
	"sort"

	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/workflow"
)

type petRepo struct {
	db *DB
}

func NewPetRepo(db *DB) pets.Repository {
	return &petRepo{db: db}
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	var out []pets.Pet
	r.db.read(func(st *state) {
		out = append(make([]pets.Pet, 0, len(st.pets)), st.pets...)
	})

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	if err := ctxErr(ctx); err != nil {
		return pets.Pet{}, err
	}

	var (
		p  pets.Pet
		ok bool
	)
	r.db.read(func(st *state) { p, ok = st.petByID(id) })
	if !ok {
		return pets.Pet{}, workflow.ErrNotFound
	}
	return p, nil
}
