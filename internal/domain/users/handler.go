package users

import (
	"net/http"
	"time"

	"pet-adoption-workflow/internal/platform/httpio"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/register", registerHandler(svc))
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

// registerHandler godoc
// @Summary  Registrar usuario
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body registerRequest true "credenciales"
// @Success  201 {object} registerResponse
// @Failure  400 {object} httpio.ErrorResponse
// @Failure  409 {object} httpio.ErrorResponse
// @Router   /register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpio.Decode(r, &req); err != nil {
			httpio.WriteError(w, err)
			return
		}

		u, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			httpio.WriteError(w, err)
			return
		}

		httpio.WriteJSON(w, http.StatusCreated, registerResponse{
			Message: "User registered successfully",
			User: userResponse{
				ID:        u.ID,
				Username:  u.Username,
				CreatedAt: u.CreatedAt,
			},
		})
	}
}
