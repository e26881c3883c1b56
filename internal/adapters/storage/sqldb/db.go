package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption-workflow/internal/domain/workflow"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// DB es el store relacional compartido por todos los repos SQL.
// El flavor decide placeholders (? vs $n) y dialecto de INSERT OR IGNORE / ON CONFLICT.
type DB struct {
	x      *sqlx.DB
	flavor sqlbuilder.Flavor
}

// New envuelve un *sql.DB ya abierto; driver es el nombre registrado en database/sql.
func New(db *sql.DB, driver string) *DB {
	return &DB{
		x:      sqlx.NewDb(db, driver),
		flavor: FlavorFor(driver),
	}
}

func FlavorFor(driver string) sqlbuilder.Flavor {
	switch driver {
	case DriverPostgres, "postgres":
		return sqlbuilder.PostgreSQL
	default:
		return sqlbuilder.SQLite
	}
}

func (db *DB) Flavor() sqlbuilder.Flavor { return db.flavor }

func (db *DB) Close() error { return db.x.Close() }

// withTx corre fn en una transacción. Cualquier salida sin Commit hace rollback.
func (db *DB) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.x.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func getOne(ctx context.Context, q sqlx.QueryerContext, dest any, b sqlbuilder.Builder) error {
	query, args := b.Build()
	err := sqlx.GetContext(ctx, q, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return workflow.ErrNotFound
	}
	return err
}

func selectAll(ctx context.Context, q sqlx.QueryerContext, dest any, b sqlbuilder.Builder) error {
	query, args := b.Build()
	return sqlx.SelectContext(ctx, q, dest, query, args...)
}

// insertReturning ejecuta el INSERT y devuelve la identidad asignada por el store.
// SQLite (>= 3.35) y Postgres soportan RETURNING.
func insertReturning(ctx context.Context, q sqlx.QueryerContext, ib *sqlbuilder.InsertBuilder, col string) (int64, error) {
	query, args := ib.Build()
	query += " RETURNING " + col

	var id int64
	if err := sqlx.GetContext(ctx, q, &id, query, args...); err != nil {
		return 0, err
	}
	return id, nil
}

// execAffected devuelve la cantidad de filas afectadas (base del compare-and-swap).
func execAffected(ctx context.Context, e sqlx.ExecerContext, b sqlbuilder.Builder) (int64, error) {
	query, args := b.Build()
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		return sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

func toAny(ids []int64) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	return out
}
