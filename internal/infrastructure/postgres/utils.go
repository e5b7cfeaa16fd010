package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgCode devuelve el SQLSTATE del error o "" si no viene de PostgreSQL.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	if code := pgCode(err); code != "" {
		return code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}

// isUndefinedTable indica que falta la tabla (42P01): el esquema no fue creado.
func isUndefinedTable(err error) bool {
	return pgCode(err) == "42P01"
}
