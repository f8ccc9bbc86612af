package hash

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGUID(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, GUID("profile", "Test"), GUID("profile", "Test"))
	})

	t.Run("part boundaries matter", func(t *testing.T) {
		require.NotEqual(t, GUID("a", "bc"), GUID("ab", "c"))
		require.NotEqual(t, GUID("a"), GUID("a", ""))
	})

	t.Run("distinct inputs diverge", func(t *testing.T) {
		seen := make(map[uuid.UUID]string)
		inputs := [][]string{
			{"profile", "Test"},
			{"profile", "Other"},
			{"command", "Test", "0"},
			{"command", "Test", "1"},
			{"base", "Test", "0"},
			{"action", "Test", "0", "0"},
		}

		for _, parts := range inputs {
			id := GUID(parts...)
			prev, dup := seen[id]
			require.False(t, dup, "collision between %v and %s", parts, prev)
			seen[id] = parts[0]
		}
	})

	t.Run("rfc 4122 shape", func(t *testing.T) {
		id := GUID("anything")
		require.Equal(t, uuid.Version(4), id.Version())
		require.Equal(t, uuid.RFC4122, id.Variant())
	})
}
