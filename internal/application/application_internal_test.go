package application

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	applicationerrors "go-jobboard/internal/application/errors"
)

func TestSplitName(t *testing.T) {
	cases := map[string]struct {
		in    string
		first string
		last  string
	}{
		"two tokens":    {"Jane Doe", "Jane", "Doe"},
		"middle name":   {"Jane Q Doe", "Jane", "Doe"},
		"single token":  {"Jane", "Jane", "Jane"},
		"extra spaces":  {"  Jane   Doe  ", "Jane", "Doe"},
		"empty":         {"", "", ""},
		"spaces only":   {"   ", "", ""},
		"tab separated": {"Jane\tDoe", "Jane", "Doe"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			first, last := splitName(tc.in)
			assert.Equal(t, tc.first, first)
			assert.Equal(t, tc.last, last)
		})
	}
}

func TestMapSubmitError(t *testing.T) {
	t.Run("Unique violation becomes conflict", func(t *testing.T) {
		err := mapSubmitError(&pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, err, applicationerrors.ErrAlreadyApplied)
	})

	t.Run("Other errors pass through", func(t *testing.T) {
		assert.ErrorIs(t, mapSubmitError(assert.AnError), assert.AnError)
	})
}
