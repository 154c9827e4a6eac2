package dashboard

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendora-shop/storefront-backend/internal/models"
)

func TestOpenSeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")

	store, err := Open(path)
	require.NoError(t, err)

	cards := store.List()
	require.Len(t, cards, 3)
	assert.Equal(t, "Lizard", cards[0].Title)
	assert.NotEmpty(t, cards[0].ID)
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")

	store, err := Open(path)
	require.NoError(t, err)

	added, err := store.Add(models.Card{Title: "Gecko", Description: "A small lizard."})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	reopened, err := Open(path)
	require.NoError(t, err)

	cards := reopened.List()
	require.Len(t, cards, 4)
	assert.Equal(t, "Gecko", cards[3].Title)
}

func TestStoreUpdateAndRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")

	store, err := Open(path)
	require.NoError(t, err)
	cards := store.List()

	updated, err := store.Update(cards[0].ID, models.Card{Title: "Iguana"})
	require.NoError(t, err)
	assert.Equal(t, cards[0].ID, updated.ID)
	assert.Equal(t, "Iguana", updated.Title)

	require.NoError(t, store.Remove(cards[1].ID))
	assert.Len(t, store.List(), 2)

	_, err = store.Update("missing", models.Card{Title: "Nope"})
	assert.ErrorIs(t, err, ErrCardNotFound)
	assert.ErrorIs(t, store.Remove("missing"), ErrCardNotFound)
}
