package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Codes d'erreur PostgreSQL interprétés par les repositories.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation contrainte d'unicité violée (code produit déjà pris).
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation
}

// isForeignKeyViolation clé étrangère violée (dépôt inexistant à l'insertion,
// ou dépôt encore référencé à la suppression).
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == codeForeignKeyViolation
}
