package localstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore opens a Badger store in a temp dir and closes it on cleanup.
func openTestStore(t *testing.T) *Badger {
	t.Helper()
	b, err := Open(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, b.Close())
	})
	return b
}

func TestBadger_TokenLifecycle(t *testing.T) {
	b := openTestStore(t)

	_, err := b.Token()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.SetToken("v4.local.abc123"))

	token, err := b.Token()
	require.NoError(t, err)
	assert.Equal(t, "v4.local.abc123", token)

	require.NoError(t, b.DeleteToken())
	_, err = b.Token()
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is not an error.
	require.NoError(t, b.DeleteToken())
}

func TestBadger_Favorites(t *testing.T) {
	b := openTestStore(t)

	ids, err := b.Favorites()
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, b.SetFavorites([]string{"shop-1", "shop-2"}))

	ids, err = b.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"shop-1", "shop-2"}, ids)

	// Overwrite with an empty list clears it.
	require.NoError(t, b.SetFavorites(nil))
	ids, err = b.Favorites()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestBadger_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	b, err := Open(dir, nil)
	require.NoError(t, err)
	require.NoError(t, b.SetToken("persisted"))
	require.NoError(t, b.SetFavorites([]string{"shop-9"}))
	require.NoError(t, b.Close())

	b, err = Open(dir, nil)
	require.NoError(t, err)
	defer b.Close()

	token, err := b.Token()
	require.NoError(t, err)
	assert.Equal(t, "persisted", token)

	ids, err := b.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"shop-9"}, ids)
}

func TestMemory_IsIsolatedCopy(t *testing.T) {
	m := NewMemory()

	_, err := m.Token()
	assert.ErrorIs(t, err, ErrNotFound)

	src := []string{"shop-1"}
	require.NoError(t, m.SetFavorites(src))
	src[0] = "mutated"

	ids, err := m.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"shop-1"}, ids)

	ids[0] = "mutated-out"
	ids2, err := m.Favorites()
	require.NoError(t, err)
	assert.Equal(t, []string{"shop-1"}, ids2)
}
