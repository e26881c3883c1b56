package questionnaires

import (
	"context"
	"time"

	"pet-adoption-workflow/internal/domain/users"
	"pet-adoption-workflow/internal/domain/workflow"
)

// Store es el acceso del workflow de cuestionarios al store relacional.
// Cada operación que escribe corre dentro de RunInTx (todo o nada).
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	ListPending(ctx context.Context) ([]PendingSubmission, error)
}

// Tx son las operaciones disponibles dentro de una transacción.
// Las lecturas de filas ausentes devuelven workflow.ErrNotFound.
type Tx interface {
	GetUserByUsername(ctx context.Context, username string) (users.User, error)
	CreateUser(ctx context.Context, u users.User) (users.User, error)

	InsertSubmission(ctx context.Context, s Submission) (Submission, error)
	GetSubmission(ctx context.Context, id int64) (Submission, error)

	// CompareAndSetStatus aplica to solo si el estado actual sigue siendo from.
	// false = ninguna fila afectada (no existe o alguien ganó la carrera).
	CompareAndSetStatus(ctx context.Context, id int64, from, to workflow.Status, at time.Time) (bool, error)

	// MissingPetIDs devuelve los ids (sin repetir, en orden de entrada) que no existen en pets.
	MissingPetIDs(ctx context.Context, ids []int64) ([]int64, error)
	// InsertGrants agrega un grant por id; los duplicados se conservan.
	InsertGrants(ctx context.Context, userID int64, petIDs []int64, at time.Time) error
}
