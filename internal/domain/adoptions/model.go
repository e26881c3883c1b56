package adoptions

import (
	"time"

	"pet-adoption-workflow/internal/domain/workflow"
)

// Request es la solicitud directa de un usuario para adoptar una mascota concreta.
// Su espacio de ids (request_id) es independiente del de los cuestionarios.
type Request struct {
	ID    int64
	PetID int64

	// PetName es una foto del nombre al momento de crear la solicitud.
	// No se resincroniza si la mascota cambia de nombre.
	PetName string

	Username string
	Status   workflow.Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
