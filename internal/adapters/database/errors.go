package database

import (
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	apperrors "github.com/konekte/resourcehub/backend/pkg/errors"
	"github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes the adapters classify.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

// dialect builds parameterized postgres statements.
var dialect = goqu.Dialect("postgres")

// storeError turns a driver error into an AppError. Unique and foreign key
// violations become conflicts; everything else is internal.
func storeError(message string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case sqlStateUniqueViolation, sqlStateForeignKeyViolation:
			return apperrors.NewConflictError(message+": "+pqErr.Message, err)
		}
	}
	return apperrors.NewInternalError(message, err)
}
