package money_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobboard/internal/shared/apperror"
	"go-jobboard/internal/shared/money"
)

func TestParse_NoValue(t *testing.T) {
	cases := map[string]json.RawMessage{
		"absent field":    nil,
		"json null":       json.RawMessage(`null`),
		"empty string":    json.RawMessage(`""`),
		"whitespace only": json.RawMessage(`"   "`),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			d, err := money.Parse(raw, "salary_min")
			assert.NoError(t, err)
			assert.Nil(t, d)
		})
	}
}

func TestParse_Values(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want string
	}{
		"number":            {`42000`, "42000"},
		"decimal number":    {`42000.505`, "42000.51"},
		"numeric string":    {`"42000.50"`, "42000.5"},
		"zero":              {`0`, "0"},
		"upper bound":       {`99999999.99`, "99999999.99"},
		"padded string":     {`"  1500 "`, "1500"},
		"scientific string": {`"1e3"`, "1000"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d, err := money.Parse(json.RawMessage(tc.raw), "salary_min")
			require.NoError(t, err)
			require.NotNil(t, d)
			assert.True(t, d.Equal(decimal.RequireFromString(tc.want)),
				"got %s want %s", d.String(), tc.want)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"non numeric string": `"abc"`,
		"boolean":            `true`,
		"object":             `{"amount": 1}`,
		"array":              `[1]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := money.Parse(json.RawMessage(raw), "salary_min")
			require.Error(t, err)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
			assert.Equal(t, 400, appErr.HTTPStatus)
		})
	}
}

func TestParse_OutOfRange(t *testing.T) {
	cases := map[string]string{
		"negative":        `-1`,
		"negative string": `"-0.01"`,
		"above maximum":   `100000000`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := money.Parse(json.RawMessage(raw), "salary_min")
			require.Error(t, err)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Message, "must be between")
		})
	}
}

func TestCheckRange(t *testing.T) {
	d := func(s string) *decimal.Decimal {
		v := decimal.RequireFromString(s)
		return &v
	}

	t.Run("min greater than max rejected", func(t *testing.T) {
		assert.Error(t, money.CheckRange(d("2000"), d("1000")))
	})

	t.Run("equal pair passes", func(t *testing.T) {
		assert.NoError(t, money.CheckRange(d("1000"), d("1000")))
	})

	t.Run("one side missing passes", func(t *testing.T) {
		assert.NoError(t, money.CheckRange(d("2000"), nil))
		assert.NoError(t, money.CheckRange(nil, d("1000")))
	})
}
