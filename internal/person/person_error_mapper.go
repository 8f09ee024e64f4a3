package person

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	personerrors "go-jobboard/internal/person/errors"
)

// mapRepositoryError translates store failures into the taxonomy. The unique
// index on people.email is the authoritative uniqueness guard; a duplicate-key
// failure surfaces as the same Conflict the fast-path pre-check produces.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return personerrors.ErrPersonNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return personerrors.ErrEmailAlreadyRegistered
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_people_email") {
		return personerrors.ErrEmailAlreadyRegistered
	}

	return err
}
