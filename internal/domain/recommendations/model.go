package recommendations

import (
	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/questionnaires"
	"pet-adoption-workflow/internal/domain/workflow"
)

// Current es la vista que el usuario tiene de su cuestionario vigente.
// Según Status solo se llena una parte:
//   - PENDING: Answers
//   - REJECTED: nada
//   - APPROVED: Recommendations (todas las mascotas concedidas al usuario, en cualquier aprobación)
type Current struct {
	QuestionnaireID int64
	Status          workflow.Status
	Answers         *questionnaires.Answers
	Recommendations []pets.Pet
}

func (c Current) Count() int {
	return len(c.Recommendations)
}

// Latest es el envío más reciente de un usuario junto con su user id.
type Latest struct {
	Submission questionnaires.Submission
	UserID     int64
}
