package candidate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLenientInt(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want *int
	}{
		"number":             {`5`, intp(5)},
		"numeric string":     {`"5"`, intp(5)},
		"padded string":      {`" 5 "`, intp(5)},
		"zero":               {`0`, intp(0)},
		"empty string":       {`""`, nil},
		"null":               {`null`, nil},
		"non numeric string": {`"five"`, nil},
		"boolean":            {`true`, nil},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := lenientInt(json.RawMessage(tc.raw))
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}

	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, lenientInt(nil))
	})
}

func intp(n int) *int {
	return &n
}
