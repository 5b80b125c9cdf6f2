package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueryParams(t *testing.T) {
	t.Parallel()

	t.Run("unset offset is omitted", func(t *testing.T) {
		t.Parallel()

		params := buildQueryParams(10, 0, false, map[string]string{"unread": "true"})

		assert.Equal(t, "limit=10&unread=true", params.ToValues().Encode())
	})

	t.Run("explicit zero offset survives", func(t *testing.T) {
		t.Parallel()

		params := buildQueryParams(0, 0, true, nil)

		assert.Equal(t, "offset=0", params.ToValues().Encode())
	})

	t.Run("explicit offset is forwarded", func(t *testing.T) {
		t.Parallel()

		params := buildQueryParams(25, 50, true, nil)

		assert.Equal(t, "limit=25&offset=50", params.ToValues().Encode())
	})

	t.Run("empty filter values are dropped", func(t *testing.T) {
		t.Parallel()

		params := buildQueryParams(0, 0, false, map[string]string{"from": ""})

		assert.Empty(t, params.ToValues().Encode())
	})
}
