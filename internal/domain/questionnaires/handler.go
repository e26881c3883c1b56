package questionnaires

import (
	"net/http"
	"time"

	"pet-adoption-workflow/internal/domain/workflow"
	"pet-adoption-workflow/internal/platform/httpio"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta la ruta pública de envío.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/questionnaire", submitHandler(svc))
}

// RegisterAdminRoutes monta las rutas de moderación; el caller aplica el gate de admin.
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Route("/questionnaires", func(qr chi.Router) {
		qr.Get("/", listPendingHandler(svc))
		qr.Post("/{questionnaireID}/approve", approveHandler(svc))
		qr.Post("/{questionnaireID}/reject", rejectHandler(svc))
	})
}

type submitRequest struct {
	Username string   `json:"username" validate:"required"`
	Answers  *Answers `json:"answers" validate:"required"`
}

type submissionResponse struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Status    workflow.Status `json:"status"`
	Answers   Answers         `json:"answers"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type submitResponse struct {
	Message string `json:"message"`
	submissionResponse
}

type pendingResponse struct {
	submissionResponse
	UserID int64 `json:"user_id"`
}

type approveRequest struct {
	PetIDs []int64 `json:"pet_ids"`
}

type approveResponse struct {
	Message      string             `json:"message"`
	ApprovedPets []int64            `json:"approved_pets"`
	Submission   submissionResponse `json:"questionnaire"`
}

type rejectRequest struct {
	ExpectedStatus string `json:"expected_status"`
}

type rejectResponse struct {
	Message    string             `json:"message"`
	Submission submissionResponse `json:"questionnaire"`
}

// submitHandler godoc
// @Summary  Enviar cuestionario
// @Tags     questionnaires
// @Accept   json
// @Produce  json
// @Param    body body submitRequest true "usuario y respuestas"
// @Success  201 {object} submitResponse
// @Failure  400 {object} httpio.ErrorResponse
// @Failure  500 {object} httpio.ErrorResponse
// @Router   /questionnaire [post]
func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := httpio.Decode(r, &req); err != nil {
			httpio.WriteError(w, err)
			return
		}

		sub, err := svc.Submit(r.Context(), req.Username, *req.Answers)
		if err != nil {
			httpio.WriteError(w, err)
			return
		}

		httpio.WriteJSON(w, http.StatusCreated, submitResponse{
			Message:            "Questionnaire is pending admin approval",
			submissionResponse: toSubmissionResponse(sub),
		})
	}
}

// listPendingHandler godoc
// @Summary  Cuestionarios pendientes
// @Tags     admin
// @Produce  json
// @Success  200 {array} pendingResponse
// @Router   /admin/questionnaires [get]
func listPendingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListPending(r.Context())
		if err != nil {
			httpio.WriteError(w, err)
			return
		}

		out := make([]pendingResponse, 0, len(items))
		for _, p := range items {
			out = append(out, pendingResponse{
				submissionResponse: toSubmissionResponse(p.Submission),
				UserID:             p.UserID,
			})
		}
		httpio.WriteJSON(w, http.StatusOK, out)
	}
}

// approveHandler godoc
// @Summary  Aprobar cuestionario con mascotas
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    questionnaireID path int true "questionnaire id"
// @Param    body body approveRequest true "mascotas aprobadas"
// @Success  200 {object} approveResponse
// @Failure  400 {object} httpio.ErrorResponse
// @Failure  404 {object} httpio.ErrorResponse
// @Router   /admin/questionnaires/{questionnaireID}/approve [post]
func approveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.ParseID(chi.URLParam(r, "questionnaireID"))
		if err != nil {
			httpio.WriteError(w, err)
			return
		}

		var req approveRequest
		if err := httpio.Decode(r, &req); err != nil {
			httpio.WriteError(w, err)
			return
		}

		res, err := svc.Approve(r.Context(), id, req.PetIDs)
		if err != nil {
			httpio.WriteError(w, err)
			return
		}

		httpio.WriteJSON(w, http.StatusOK, approveResponse{
			Message:      "Questionnaire approved successfully",
			ApprovedPets: res.PetIDs,
			Submission:   toSubmissionResponse(res.Submission),
		})
	}
}

// rejectHandler godoc
// @Summary  Rechazar cuestionario
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    questionnaireID path int true "questionnaire id"
// @Param    body body rejectRequest false "estado esperado (opcional)"
// @Success  200 {object} rejectResponse
// @Failure  404 {object} httpio.ErrorResponse
// @Failure  409 {object} httpio.ErrorResponse
// @Router   /admin/questionnaires/{questionnaireID}/reject [post]
func rejectHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.ParseID(chi.URLParam(r, "questionnaireID"))
		if err != nil {
			httpio.WriteError(w, err)
			return
		}

		// body opcional
		var req rejectRequest
		if r.ContentLength != 0 {
			if err := httpio.Decode(r, &req); err != nil {
				httpio.WriteError(w, err)
				return
			}
		}
		expected, err := workflow.ParseExpected(req.ExpectedStatus)
		if err != nil {
			httpio.WriteError(w, err)
			return
		}

		sub, err := svc.Reject(r.Context(), id, expected)
		if err != nil {
			httpio.WriteError(w, err)
			return
		}

		httpio.WriteJSON(w, http.StatusOK, rejectResponse{
			Message:    "Questionnaire rejected successfully",
			Submission: toSubmissionResponse(sub),
		})
	}
}

func toSubmissionResponse(s Submission) submissionResponse {
	return submissionResponse{
		ID:        s.ID,
		Username:  s.Username,
		Status:    s.Status,
		Answers:   s.Answers,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
