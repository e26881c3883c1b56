package recommendations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-adoption-workflow/internal/domain/workflow"
)

type Reader struct {
	store Store
}

func NewReader(store Store) *Reader {
	return &Reader{store: store}
}

// GetCurrent reconstruye el estado visible del cuestionario más reciente del usuario.
// Los grants no están ligados a un envío: si está APPROVED se devuelven todas las
// mascotas concedidas al usuario a lo largo de todas sus aprobaciones.
func (r *Reader) GetCurrent(ctx context.Context, username string) (Current, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Current{}, workflow.Validation("username is required")
	}

	latest, err := r.store.LatestSubmission(ctx, username)
	if errors.Is(err, workflow.ErrNotFound) {
		return Current{}, workflow.NotFound(fmt.Sprintf("no questionnaire answers found for user %q", username))
	}
	if err != nil {
		return Current{}, workflow.Storage("latest questionnaire", err)
	}

	sub := latest.Submission
	cur := Current{QuestionnaireID: sub.ID, Status: sub.Status}

	switch sub.Status {
	case workflow.StatusPending:
		answers := sub.Answers
		cur.Answers = &answers
	case workflow.StatusRejected:
		// sin respuestas ni recomendaciones
	case workflow.StatusApproved:
		granted, err := r.store.GrantedPets(ctx, latest.UserID)
		if err != nil {
			return Current{}, workflow.Storage("granted pets", err)
		}
		cur.Recommendations = granted
	default:
		return Current{}, workflow.Storage("latest questionnaire", fmt.Errorf("unexpected status %q", sub.Status))
	}

	return cur, nil
}
