package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstOf(t *testing.T) {
	hit := func(v string) strategy { return func() string { return v } }

	t.Run("first non-empty wins", func(t *testing.T) {
		calls := 0
		counted := func(v string) strategy {
			return func() string { calls++; return v }
		}
		got := firstOf("def", counted(""), counted("  "), counted("value"), counted("later"))
		assert.Equal(t, "value", got)
		assert.Equal(t, 3, calls, "strategies after the first hit must not run")
	})

	t.Run("default when all empty", func(t *testing.T) {
		assert.Equal(t, "def", firstOf("def", hit(""), hit("   ")))
	})

	t.Run("default when no strategies", func(t *testing.T) {
		assert.Equal(t, "def", firstOf("def"))
	})

	t.Run("results are trimmed", func(t *testing.T) {
		assert.Equal(t, "x", firstOf("def", hit("  x  ")))
	})
}
