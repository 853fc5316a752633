package bouquet

import (
	"strings"
	"testing"

	"github.com/Galyna-kud/flowers-of-happiness/internal/cart"
	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
	"github.com/Galyna-kud/flowers-of-happiness/internal/identity"
	"github.com/Galyna-kud/flowers-of-happiness/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSession struct {
	user *domain.User
}

func (s *stubSession) CurrentUser() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func signedIn() *stubSession {
	return &stubSession{user: &domain.User{ID: "u1", Name: "Олена", Email: "olena@example.com"}}
}

func firstFlowerID(b *Builder) string {
	return b.Flowers()[0].ID
}

func TestUpdateQuantity_ClampsAtZero(t *testing.T) {
	b := New(storage.NewMemStore(), &stubSession{})
	id := firstFlowerID(b)

	b.UpdateQuantity(id, 2)
	b.UpdateQuantity(id, -100)

	for _, f := range b.Flowers() {
		assert.GreaterOrEqual(t, f.Quantity, 0)
	}
	assert.Zero(t, b.TotalFlowers())
}

func TestUpdateQuantity_DeltasAccumulate(t *testing.T) {
	b := New(storage.NewMemStore(), &stubSession{})
	id := firstFlowerID(b)

	b.UpdateQuantity(id, 1)
	b.UpdateQuantity(id, 1)
	b.UpdateQuantity(id, -1)

	selected := b.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, 1, selected[0].Quantity)
	assert.Equal(t, selected[0].Price, b.TotalPrice())
}

func TestReset_RestoresQuantitiesAndName(t *testing.T) {
	b := New(storage.NewMemStore(), &stubSession{})
	b.UpdateQuantity(firstFlowerID(b), 3)
	b.SetName("Для мами")

	b.Reset()

	assert.Zero(t, b.TotalFlowers())
	assert.Equal(t, DefaultName, b.Name())
}

func TestSave_Unauthenticated_PersistsNothing(t *testing.T) {
	store := storage.NewMemStore()
	b := New(store, &stubSession{})
	b.UpdateQuantity(firstFlowerID(b), 3)

	_, err := b.Save()

	assert.ErrorIs(t, err, identity.ErrNotAuthenticated)
	assert.Empty(t, b.Saved())
	var persisted []domain.CustomBouquet
	found, loadErr := store.Load(storage.KeySavedBouquets, &persisted)
	require.NoError(t, loadErr)
	assert.False(t, found)
}

func TestSave_EmptySelection_Fails(t *testing.T) {
	b := New(storage.NewMemStore(), signedIn())

	_, err := b.Save()

	assert.ErrorIs(t, err, ErrEmptyBouquet)
}

func TestSave_SnapshotsSelectionAndPersists(t *testing.T) {
	store := storage.NewMemStore()
	b := New(store, signedIn())
	id := firstFlowerID(b)
	b.UpdateQuantity(id, 2)
	b.SetName("Ніжність")

	saved, err := b.Save()
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "Ніжність", saved.Name)
	require.Len(t, saved.Flowers, 1)
	assert.Equal(t, 2, saved.Flowers[0].Quantity)
	assert.Equal(t, saved.Flowers[0].Price*2, saved.TotalPrice)
	assert.False(t, saved.CreatedAt.IsZero())

	// Snapshot, not a live reference: later edits must not leak in.
	b.UpdateQuantity(id, 5)
	assert.Equal(t, 2, b.Saved()[0].Flowers[0].Quantity)

	restored := New(store, signedIn())
	require.Len(t, restored.Saved(), 1)
	assert.Equal(t, saved.ID, restored.Saved()[0].ID)
}

func TestRemoveSaved_DeletesByID(t *testing.T) {
	b := New(storage.NewMemStore(), signedIn())
	b.UpdateQuantity(firstFlowerID(b), 1)
	saved, err := b.Save()
	require.NoError(t, err)

	b.RemoveSaved(saved.ID)

	assert.Empty(t, b.Saved())
}

func TestAddToCart_EmptySelection_Fails(t *testing.T) {
	b := New(storage.NewMemStore(), &stubSession{})
	c := cart.New(storage.NewMemStore())

	_, err := b.AddToCart(c)

	assert.ErrorIs(t, err, ErrEmptyBouquet)
	assert.Empty(t, c.Items())
}

func TestAddToCart_SynthesizesCustomLine(t *testing.T) {
	b := New(storage.NewMemStore(), &stubSession{})
	c := cart.New(storage.NewMemStore())
	flowers := b.Flowers()
	b.UpdateQuantity(flowers[0].ID, 2)
	b.UpdateQuantity(flowers[1].ID, 1)
	b.SetName("Мій вибір")

	item, err := b.AddToCart(c)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(item.Bouquet.ID, CustomIDPrefix))
	assert.Equal(t, "Мій вибір", item.Bouquet.Name)
	assert.Equal(t, flowers[0].Price*2+flowers[1].Price, item.Bouquet.Price)
	assert.Contains(t, item.Bouquet.Description, flowers[0].Name)
	assert.Equal(t, 1, item.Quantity)
	require.Len(t, c.Items(), 1)
}
