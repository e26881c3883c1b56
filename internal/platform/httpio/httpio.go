// Package httpio reúne los helpers JSON que antes se duplicaban en cada handler.
package httpio

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"pet-adoption-workflow/internal/domain/workflow"
	"pet-adoption-workflow/internal/platform/validation"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor traduce la taxonomía de errores del workflow a códigos HTTP.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, workflow.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, workflow.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, workflow.ErrConflict):
		return http.StatusConflict
	default:
		// StorageError y cualquier falla no clasificada
		return http.StatusInternalServerError
	}
}

func WriteError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		// no filtramos detalles del store al cliente; quedan en logs
		msg = "internal error"
	}
	WriteJSON(w, status, ErrorResponse{Error: msg})
}

// Decode parsea el body y valida los tags `validate`.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return workflow.Validation("no data provided")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return workflow.Validation("no data provided")
		}
		return workflow.Validation("invalid json")
	}
	return validation.Struct(dst)
}

// ParseID parsea ids numéricos de path params.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, workflow.Validation("invalid id " + strconv.Quote(raw))
	}
	return id, nil
}
