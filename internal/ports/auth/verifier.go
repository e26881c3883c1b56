package auth

import "context"

// Admin es el principal que queda en el contexto tras pasar el gate.
type Admin struct {
	Username string
}

// AdminVerifier valida credenciales de administrador.
// (false, nil) = credenciales inválidas; error = fallo del store.
type AdminVerifier interface {
	VerifyAdmin(ctx context.Context, username, password string) (bool, error)
}
