package recommendations

import (
	"net/http"

	"pet-adoption-workflow/internal/domain/pets"
	"pet-adoption-workflow/internal/domain/questionnaires"
	"pet-adoption-workflow/internal/domain/workflow"
	"pet-adoption-workflow/internal/platform/httpio"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, reader *Reader) {
	r.Get("/questionnaire/{username}", getCurrentHandler(reader))
}

// currentResponse tiene una de tres formas según status; los campos ausentes se omiten.
type currentResponse struct {
	Status          workflow.Status         `json:"status"`
	Message         string                  `json:"message,omitempty"`
	Answers         *questionnaires.Answers `json:"answers,omitempty"`
	Recommendations []pets.Response         `json:"recommendations,omitempty"`
	Count           *int                    `json:"count,omitempty"`
}

// getCurrentHandler godoc
// @Summary  Estado actual del cuestionario y recomendaciones
// @Tags     questionnaires
// @Produce  json
// @Param    username path string true "username"
// @Success  200 {object} currentResponse
// @Failure  404 {object} httpio.ErrorResponse
// @Router   /questionnaire/{username} [get]
func getCurrentHandler(reader *Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cur, err := reader.GetCurrent(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			httpio.WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, toCurrentResponse(cur))
	}
}

func toCurrentResponse(c Current) currentResponse {
	switch c.Status {
	case workflow.StatusPending:
		return currentResponse{
			Status:  c.Status,
			Message: "Questionnaire is pending admin approval",
			Answers: c.Answers,
		}
	case workflow.StatusRejected:
		return currentResponse{
			Status:  c.Status,
			Message: "Questionnaire was rejected by admin",
		}
	default:
		count := c.Count()
		return currentResponse{
			Status:          c.Status,
			Recommendations: pets.ToResponses(c.Recommendations),
			Count:           &count,
		}
	}
}
