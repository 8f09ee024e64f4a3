package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"go-jobboard/internal/shared/apperror"
)

// Salary columns are DECIMAL(10,2); the parse range mirrors that.
var maxAmount = decimal.RequireFromString("99999999.99")

// Parse interprets a raw JSON salary value. A nil raw message (field absent),
// JSON null, an empty string, or a whitespace-only string all mean "no value"
// and return (nil, nil), not zero. The value may arrive as a JSON number or a
// numeric string; anything else is InvalidField, and values outside
// [0, 99999999.99] are OutOfRange.
func Parse(raw json.RawMessage, fieldName string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, apperror.InvalidField(fieldName)
	}

	var s string
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		s = strings.TrimSpace(val)
		if s == "" {
			return nil, nil
		}
	case float64:
		// Re-read the raw token so 0.1 keeps its textual form.
		s = strings.TrimSpace(string(raw))
	default:
		return nil, apperror.InvalidField(fieldName)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, apperror.InvalidField(fieldName)
	}

	if d.IsNegative() || d.GreaterThan(maxAmount) {
		return nil, apperror.OutOfRange(formatFieldName(fieldName))
	}

	d = d.Round(2)
	return &d, nil
}

// CheckRange rejects min > max. Callers pass the effective pair: on partial
// updates the absent side is filled from the stored row first.
func CheckRange(min, max *decimal.Decimal) error {
	if min != nil && max != nil && min.GreaterThan(*max) {
		return apperror.New(
			apperror.CodeInvalidInput,
			"salary_min cannot be greater than salary_max",
			400,
		)
	}
	return nil
}

func formatFieldName(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
