package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-adoption-workflow/internal/platform/httpio"
	"pet-adoption-workflow/internal/platform/logger"
	"pet-adoption-workflow/internal/ports/auth"
)

type ctxKey string

const adminKey ctxKey = "admin"

// RequireAdmin:
// - Si verifier == nil => modo dev: no hay gate; si viene header X-Debug-Admin se usa como principal.
// - Si verifier != nil => exige HTTP basic auth contra la tabla admins (401 si falla).
func RequireAdmin(verifier auth.AdminVerifier, log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Dev mode
			if verifier == nil {
				admin := auth.Admin{Username: strings.TrimSpace(r.Header.Get("X-Debug-Admin"))}
				if admin.Username == "" {
					admin.Username = "dev"
				}
				next.ServeHTTP(w, r.WithContext(withAdmin(r.Context(), admin)))
				return
			}

			username, password, ok := r.BasicAuth()
			if !ok || strings.TrimSpace(username) == "" {
				unauthorized(w)
				return
			}

			valid, err := verifier.VerifyAdmin(r.Context(), username, password)
			if err != nil {
				log.Error("admin verification failed", map[string]any{"err": err})
				httpio.WriteJSON(w, http.StatusInternalServerError, httpio.ErrorResponse{Error: "internal error"})
				return
			}
			if !valid {
				log.Warn("admin credentials rejected", map[string]any{"username": username})
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(withAdmin(r.Context(), auth.Admin{Username: username})))
		})
	}
}

func GetAdmin(ctx context.Context) (auth.Admin, bool) {
	v := ctx.Value(adminKey)
	if v == nil {
		return auth.Admin{}, false
	}
	a, ok := v.(auth.Admin)
	return a, ok
}

func withAdmin(ctx context.Context, a auth.Admin) context.Context {
	return context.WithValue(ctx, adminKey, a)
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
	httpio.WriteJSON(w, http.StatusUnauthorized, httpio.ErrorResponse{Error: "admin credentials required"})
}
