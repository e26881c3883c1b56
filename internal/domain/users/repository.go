package users

import "context"

type Repository interface {
	// Create inserta el usuario; si el username ya existe devuelve workflow.ErrConflict.
	Create(ctx context.Context, u User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
