package memory

import (
	"context"
	"fmt"

	"pet-adoption-workflow/internal/domain/users"
	"pet-adoption-workflow/internal/domain/workflow"
)

type userRepo struct {
	db *DB
}

func NewUserRepo(db *DB) users.Repository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	if err := ctxErr(ctx); err != nil {
		return users.User{}, err
	}

	var out users.User
	err := r.db.runInTx(func(st *state) error {
		created, ok := st.insertUser(u)
		if !ok {
			return workflow.Conflict(fmt.Sprintf("username %q already exists", u.Username))
		}
		out = created
		return nil
	})
	return out, err
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	if err := ctxErr(ctx); err != nil {
		return users.User{}, err
	}

	var (
		u  users.User
		ok bool
	)
	r.db.read(func(st *state) { u, ok = st.userByUsername(username) })
	if !ok {
		return users.User{}, workflow.ErrNotFound
	}
	return u, nil
}

type AdminVerifier struct {
	db *DB
}

// NewAdminVerifier compara contra la tabla admins (igualdad de texto plano).
func NewAdminVerifier(db *DB) *AdminVerifier {
	return &AdminVerifier{db: db}
}

func (v *AdminVerifier) VerifyAdmin(ctx context.Context, username, password string) (bool, error) {
	if err := ctxErr(ctx); err != nil {
		return false, err
	}

	ok := false
	v.db.read(func(st *state) {
		for _, a := range st.admins {
			if a.Username == username && a.Password == password {
				ok = true
				return
			}
		}
	})
	return ok, nil
}
