package questionnaires

import (
	"time"

	"pet-adoption-workflow/internal/domain/workflow"
)

// Answers son las preferencias declaradas por el adoptante. Las cinco son obligatorias.
type Answers struct {
	LivingSpace      string `json:"living_space" validate:"required"`
	ActivityLevel    string `json:"activity_level" validate:"required"`
	MaintenanceLevel string `json:"maintenance_level" validate:"required"`
	Budget           string `json:"budget" validate:"required"`
	PetType          string `json:"pet_type" validate:"required"`
}

// Submission es un envío de cuestionario. Se crea PENDING y transiciona una sola vez.
// Un usuario puede tener varios (historial); el "actual" es el más reciente.
type Submission struct {
	ID       int64
	Username string
	Answers  Answers
	Status   workflow.Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PendingSubmission es un envío PENDING junto con la identidad del usuario que lo envió.
type PendingSubmission struct {
	Submission
	UserID int64
}

// Approval es el resultado de aprobar: el envío ya APPROVED y los grants creados.
type Approval struct {
	Submission Submission
	UserID     int64
	PetIDs     []int64
}
