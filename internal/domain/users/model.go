package users

import "time"

// User es la identidad de un adoptante. Se crea por registro explícito
// o de forma perezosa al primer envío de cuestionario. Nunca se borra.
type User struct {
	ID       int64
	Username string

	// PasswordHash es bcrypt; nunca se expone por HTTP.
	PasswordHash string

	CreatedAt time.Time
}
