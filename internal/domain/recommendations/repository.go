package recommendations

import (
	"context"

	"pet-adoption-workflow/internal/domain/pets"
)

// Store es de solo lectura.
type Store interface {
	// LatestSubmission: created_at DESC, id DESC. Sin envíos => workflow.ErrNotFound.
	LatestSubmission(ctx context.Context, username string) (Latest, error)
	// GrantedPets devuelve las mascotas de todos los grants del usuario (duplicados incluidos), por orden de grant.
	GrantedPets(ctx context.Context, userID int64) ([]pets.Pet, error)
}
