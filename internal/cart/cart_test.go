package cart

import (
	"testing"

	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
	"github.com/Galyna-kud/flowers-of-happiness/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	roses      = domain.Bouquet{ID: "1", Name: "Троянди", Price: 1200}
	peonies    = domain.Bouquet{ID: "2", Name: "Півонії", Price: 1650}
	sunflowers = domain.Bouquet{ID: "3", Name: "Соняшники", Price: 850}
)

func TestAdd_SameBouquetTwice_SingleLineQuantityTwo(t *testing.T) {
	s := New(storage.NewMemStore())

	s.Add(roses)
	s.Add(roses)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].Bouquet.ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, s.TotalItems())
	assert.Equal(t, 2400, s.TotalPrice())
}

func TestAdd_NewLinesAppendInOrder(t *testing.T) {
	s := New(storage.NewMemStore())

	s.Add(roses)
	s.Add(peonies)
	s.Add(sunflowers)
	s.Add(peonies)

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0].Bouquet.ID)
	assert.Equal(t, "2", items[1].Bouquet.ID)
	assert.Equal(t, "3", items[2].Bouquet.ID)
}

func TestUpdateQuantity_ZeroBehavesLikeRemove(t *testing.T) {
	a := New(storage.NewMemStore())
	b := New(storage.NewMemStore())
	for _, s := range []*Service{a, b} {
		s.Add(roses)
		s.Add(peonies)
	}

	a.UpdateQuantity("1", 0)
	b.Remove("1")

	assert.Equal(t, b.Items(), a.Items())
}

func TestUpdateQuantity_SetsAbsoluteValue(t *testing.T) {
	s := New(storage.NewMemStore())
	s.Add(roses)

	s.UpdateQuantity("1", 5)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 6000, s.TotalPrice())
}

func TestUpdateQuantity_AbsentLineIsNoop(t *testing.T) {
	s := New(storage.NewMemStore())
	s.Add(roses)

	s.UpdateQuantity("missing", 3)
	s.Remove("missing")

	require.Len(t, s.Items(), 1)
}

func TestClear_EmptiesCart(t *testing.T) {
	s := New(storage.NewMemStore())
	s.Add(roses)
	s.Add(peonies)

	s.Clear()

	assert.Empty(t, s.Items())
	assert.Zero(t, s.TotalItems())
	assert.Zero(t, s.TotalPrice())
}

func TestNew_RestoresPersistedState(t *testing.T) {
	store := storage.NewMemStore()
	first := New(store)
	first.Add(roses)
	first.Add(roses)
	first.Add(peonies)

	second := New(store)

	assert.Equal(t, first.Items(), second.Items())
	assert.Equal(t, 3, second.TotalItems())
}

func TestNew_CorruptStorageStartsEmpty(t *testing.T) {
	store := storage.NewMemStore()
	store.Put(storage.KeyCart, []byte("{broken"))

	s := New(store)

	assert.Empty(t, s.Items())
}
