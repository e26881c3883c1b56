package pets

import (
	"net/http"

	"pet-adoption-workflow/internal/platform/httpio"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
	})
}

// Response es la forma JSON de una mascota (también la usan las recomendaciones).
type Response struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Size             string `json:"size"`
	ActivityLevel    string `json:"activity_level"`
	MaintenanceLevel string `json:"maintenance_level"`
	Budget           string `json:"budget"`
}

func ToResponse(p Pet) Response {
	return Response{
		ID:               p.ID,
		Name:             p.Name,
		Type:             p.Type,
		Size:             p.Size,
		ActivityLevel:    p.ActivityLevel,
		MaintenanceLevel: p.MaintenanceLevel,
		Budget:           p.Budget,
	}
}

func ToResponses(items []Pet) []Response {
	out := make([]Response, 0, len(items))
	for _, p := range items {
		out = append(out, ToResponse(p))
	}
	return out
}

// listPetsHandler godoc
// @Summary  Listar mascotas
// @Tags     pets
// @Produce  json
// @Success  200 {array} Response
// @Router   /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpio.WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, ToResponses(items))
	}
}

// getPetHandler godoc
// @Summary  Detalle de mascota
// @Tags     pets
// @Produce  json
// @Param    petID path int true "pet id"
// @Success  200 {object} Response
// @Failure  404 {object} httpio.ErrorResponse
// @Router   /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpio.ParseID(chi.URLParam(r, "petID"))
		if err != nil {
			httpio.WriteError(w, err)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpio.WriteError(w, err)
			return
		}
		httpio.WriteJSON(w, http.StatusOK, ToResponse(p))
	}
}
