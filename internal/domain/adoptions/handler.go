package adoptions

import (
	"net/http"
	"time"

	"pet-adoption-workflow/internal/domain/workflow"
	"pet-adoption-workflow/internal/platform/httpio"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Post("/", createHandler(svc))
		ar.Get("/{username}", listForUserHandler(svc))
	})
}

// RegisterAdminRoutes: el caller aplica el gate de admin.
// POST /adoptions se mantiene también bajo /admin por compatibilidad con clientes viejos.
func RegisterAdminRoutes(r chi.Router, svc *Service) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Get("/", listAllHandler(svc))
		ar.Post("/", createHandler(svc))
		ar.Post("/{requestID}/{action}", updateStatusHandler(svc))
	})
}

type createRequest struct {
	PetID    int64  `json:"pet_id" validate:"required,gt=0"`
	Username string `json:"username" validate:"required"`
}

type updateRequest struct {
	ExpectedStatus string `json:"expected_status"`
}

type Response struct {
	RequestID int64           `json:"request_id"`
	PetID     int64           `json:"pet_id"`
	PetName   string          `json:"pet_name"`
	Username  string          `json:"username"`
	Status    workflow.Status `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toResponse(r Request) Response {
	return Response{
		RequestID: r.ID,
		PetID:     r.PetID,
		PetName:   r.PetName,
		Username:  r.Username,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toResponses(items []Request) []Response {
	out := make([]Response, 0, len(items))
	for _, it := range items {
		out = append(out, toResponse(it))
	}
	return out
}

// createHandler godoc
// @Summary  Crear solicitud de adopción
// @Tags     adoptions
// @Accept   json
// @Produce  json
// @Param    body body createRequest true "mascota y usuario"
// @Success  201 {object} Response
// @Failure  400 {object} httpio.ErrorResponse
// @Failure  404 {object} httpio.ErrorResponse
// @Router   /adoptions [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := httpio.Decode(r, &req); err != nil {
			httpio.WriteError(w, err)
			return
		}

		out, err := svc.Create(r.Context(), req.PetID, req.Username)
		if err != nil {
			httpio.WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusCreated, toResponse(out))
	}
}

// listForUserHandler godoc
// @Summary  Solicitudes de un usuario
// @Tags     adoptions
// @Produce  json
// @Param    username path string true "username"
// @Success  200 {array} Response
// @Router   /adoptions/{username} [get]
func listForUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListForUser(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			httpio.WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, toResponses(items))
	}
}

// listAllHandler godoc
// @Summary  Todas las solicitudes de adopción
// @Tags     admin
// @Produce  json
// @Success  200 {array} Response
// @Router   /admin/adoptions [get]
func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			httpio.WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, toResponses(items))
	}
}

// updateStatusHandler godoc
// @Summary  Aprobar o rechazar solicitud
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    requestID path int true "request id"
// @Param    action path string true "approve | reject"
// @Param    body body updateRequest false "estado esperado (opcional)"
// @Success  200 {object} Response
// @Failure  400 {object} httpio.ErrorResponse
// @Failure  404 {object} httpio.ErrorResponse
// @Failure  409 {object} httpio.ErrorResponse
// @Router   /admin/adoptions/{requestID}/{action} [post]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.ParseID(chi.URLParam(r, "requestID"))
		if err != nil {
			httpio.WriteError(w, err)
			return
		}

		var req updateRequest
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

		out, err := svc.UpdateStatus(r.Context(), id, chi.URLParam(r, "action"), expected)
		if err != nil {
			httpio.WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, toResponse(out))
	}
}
