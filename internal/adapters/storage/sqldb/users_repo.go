package sqldb

import (
	"context"
	"fmt"

	"pet-adoption-workflow/internal/domain/users"
	"pet-adoption-workflow/internal/domain/workflow"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
)

type UsersRepo struct {
	db *DB
}

func NewUsersRepo(db *DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	return insertUser(ctx, r.db.x, r.db.flavor, u)
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	return userByUsername(ctx, r.db.x, r.db.flavor, username)
}

func userByUsername(ctx context.Context, q sqlx.QueryerContext, flavor sqlbuilder.Flavor, username string) (users.User, error) {
	sb := flavor.NewSelectBuilder()
	sb.Select(userCols...)
	sb.From("users AS u")
	sb.Where(sb.Equal("u.username", username))

	var row userRow
	if err := getOne(ctx, q, &row, sb); err != nil {
		return users.User{}, err
	}
	return row.toDomain(), nil
}

func insertUser(ctx context.Context, q sqlx.QueryerContext, flavor sqlbuilder.Flavor, u users.User) (users.User, error) {
	ib := flavor.NewInsertBuilder()
	ib.InsertInto("users")
	ib.Cols("username", "password_hash", "created_at")
	ib.Values(u.Username, u.PasswordHash, u.CreatedAt)

	id, err := insertReturning(ctx, q, ib, "id")
	if isUniqueViolation(err) {
		return users.User{}, workflow.Conflict(fmt.Sprintf("username %q already exists", u.Username))
	}
	if err != nil {
		return users.User{}, err
	}
	u.ID = id
	return u, nil
}

// AdminVerifier implementa auth.AdminVerifier contra la tabla admins.
// La comparación es igualdad de texto plano, igual que el esquema heredado.
type AdminVerifier struct {
	db *DB
}

func NewAdminVerifier(db *DB) *AdminVerifier {
	return &AdminVerifier{db: db}
}

func (v *AdminVerifier) VerifyAdmin(ctx context.Context, username, password string) (bool, error) {
	sb := v.db.flavor.NewSelectBuilder()
	sb.Select("COUNT(*)")
	sb.From("admins")
	sb.Where(sb.Equal("username", username), sb.Equal("password", password))

	var n int
	if err := getOne(ctx, v.db.x, &n, sb); err != nil {
		return false, err
	}
	return n > 0, nil
}
