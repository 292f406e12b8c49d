package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isForeignKeyViolation 23503: la fila referenciada no existe o aún tiene dependientes.
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}

// constraintName devuelve el constraint violado, vacío si el error no viene de Postgres.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// nullableLike convierte el texto de búsqueda en patrón ILIKE; vacío desactiva el filtro.
func nullableLike(q string) *string {
	if q == "" {
		return nil
	}
	p := "%" + q + "%"
	return &p
}

// nonNil evita que un slice nil se guarde como JSON null en columnas JSONB.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// isMissing trata como inexistente tanto la fila ausente como un id que no es UUID (22P02).
func isMissing(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgCode(err) == "22P02"
}

// execDelete ejecuta un DELETE por id y devuelve notFound si no borró nada.
func execDelete(ctx context.Context, q Querier, query, id string, notFound error) error {
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		if isMissing(err) {
			return notFound
		}
		return fmt.Errorf("delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// collect recorre rows aplicando scan; cierra rows siempre.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	var list []*T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
