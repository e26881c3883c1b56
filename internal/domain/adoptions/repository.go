package adoptions

import (
	"context"
	"time"

	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/workflow"
)

type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	List(ctx context.Context) ([]Request, error)
	ListByUsername(ctx context.Context, username string) ([]Request, error)
}

// Tx: lecturas de filas ausentes devuelven workflow.ErrNotFound.
type Tx interface {
	GetPet(ctx context.Context, id int64) (pets.Pet, error)
	// Insert devuelve el request_id asignado por el store.
	Insert(ctx context.Context, r Request) (int64, error)
	Get(ctx context.Context, id int64) (Request, error)
	CompareAndSetStatus(ctx context.Context, id int64, from, to workflow.Status, at time.Time) (bool, error)
}
