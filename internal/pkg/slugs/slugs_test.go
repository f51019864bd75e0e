package slugs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existsIn(taken ...string) ExistsFunc {
	set := map[string]bool{}
	for _, s := range taken {
		set[s] = true
	}
	return func(candidate string) (bool, error) {
		return set[candidate], nil
	}
}

func TestUnique_NoCollision(t *testing.T) {
	got, err := Unique("2022 Toyota Corolla", existsIn())
	require.NoError(t, err)
	assert.Equal(t, "2022-toyota-corolla", got)
}

func TestUnique_CollisionSuffix(t *testing.T) {
	got, err := Unique("2022 Toyota Corolla", existsIn("2022-toyota-corolla"))
	require.NoError(t, err)
	assert.Equal(t, "2022-toyota-corolla-1", got)

	got, err = Unique("2022 Toyota Corolla", existsIn("2022-toyota-corolla", "2022-toyota-corolla-1"))
	require.NoError(t, err)
	assert.Equal(t, "2022-toyota-corolla-2", got)
}

func TestUnique_ExistsError(t *testing.T) {
	boom := errors.New("store unavailable")
	_, err := Unique("Mercedes-Benz", func(string) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}
