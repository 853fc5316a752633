// Package bouquet implements the build-your-own-bouquet configurator: the
// dense flower-variant catalog with per-variant quantities, the saved-bouquet
// collection, and conversion of a draft into a cart line.
package bouquet

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
	"github.com/Galyna-kud/flowers-of-happiness/internal/identity"
	"github.com/Galyna-kud/flowers-of-happiness/internal/storage"
)

// DefaultName is the placeholder a fresh draft starts with.
const DefaultName = "Мій унікальний букет"

// CustomIDPrefix marks cart lines that were built here rather than sourced
// from the catalog. The UI keys off it, e.g. custom lines have no image.
const CustomIDPrefix = "custom-"

// ErrEmptyBouquet is returned by Save and AddToCart when no flower is
// selected.
var ErrEmptyBouquet = errors.New("bouquet has no flowers selected")

// Session is the slice of the identity contract the builder needs.
type Session interface {
	CurrentUser() (domain.User, bool)
}

// Cart receives the synthesized line from AddToCart.
type Cart interface {
	Add(b domain.Bouquet) domain.CartItem
}

type Builder struct {
	mu      sync.Mutex
	flowers []domain.CustomFlower
	name    string
	saved   []domain.CustomBouquet

	store   storage.Store
	session Session
}

// New starts a fresh draft (all quantities zero) and restores the saved
// bouquets collection from the store.
func New(store storage.Store, session Session) *Builder {
	b := &Builder{
		flowers: domain.CustomFlowers(),
		name:    DefaultName,
		store:   store,
		session: session,
	}
	if _, err := store.Load(storage.KeySavedBouquets, &b.saved); err != nil {
		log.Printf("bouquet: restore saved bouquets failed, starting empty: %v", err)
		b.saved = nil
	}
	return b
}

// UpdateQuantity adjusts a variant's quantity by delta, clamping at zero.
// Unknown variant IDs are ignored.
func (b *Builder) UpdateQuantity(flowerID string, delta int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.flowers {
		if b.flowers[i].ID == flowerID {
			b.flowers[i].Quantity = max(0, b.flowers[i].Quantity+delta)
			return
		}
	}
}

// SetName renames the draft. Blank input falls back to the placeholder.
func (b *Builder) SetName(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	b.name = name
}

// Reset restores every quantity to zero and the name to the placeholder.
func (b *Builder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flowers = domain.CustomFlowers()
	b.name = DefaultName
}

// Flowers returns a copy of the full variant list, selected or not.
func (b *Builder) Flowers() []domain.CustomFlower {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.CustomFlower, len(b.flowers))
	copy(out, b.flowers)
	return out
}

func (b *Builder) Name() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.name
}

// Selected returns the variants with quantity above zero.
func (b *Builder) Selected() []domain.CustomFlower {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selectedLocked()
}

// TotalPrice sums unit price times quantity over the selection.
func (b *Builder) TotalPrice() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalPriceLocked()
}

// TotalFlowers sums the selected quantities.
func (b *Builder) TotalFlowers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := 0
	for _, f := range b.flowers {
		total += f.Quantity
	}
	return total
}

// Save snapshots the draft into an immutable CustomBouquet and persists the
// saved collection. It requires an authenticated session and at least one
// selected flower; the draft itself is left untouched either way.
func (b *Builder) Save() (domain.CustomBouquet, error) {
	if _, ok := b.session.CurrentUser(); !ok {
		return domain.CustomBouquet{}, identity.ErrNotAuthenticated
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	selected := b.selectedLocked()
	if len(selected) == 0 {
		return domain.CustomBouquet{}, ErrEmptyBouquet
	}

	saved := domain.CustomBouquet{
		ID:         uuid.NewString(),
		Name:       b.name,
		Flowers:    selected,
		TotalPrice: b.totalPriceLocked(),
		CreatedAt:  time.Now(),
	}
	b.saved = append(b.saved, saved)
	b.persistSaved()
	return saved, nil
}

// AddToCart synthesizes a pseudo-product from the draft and hands it to the
// cart. Requires at least one selected flower.
func (b *Builder) AddToCart(cart Cart) (domain.CartItem, error) {
	b.mu.Lock()
	selected := b.selectedLocked()
	if len(selected) == 0 {
		b.mu.Unlock()
		return domain.CartItem{}, ErrEmptyBouquet
	}

	names := make([]string, len(selected))
	for i, f := range selected {
		names[i] = f.Name
	}
	product := domain.Bouquet{
		ID:          CustomIDPrefix + uuid.NewString(),
		Name:        b.name,
		Price:       b.totalPriceLocked(),
		Category:    "custom",
		Description: "Власний букет: " + strings.Join(names, ", "),
		Flowers:     names,
		Rating:      5,
	}
	b.mu.Unlock()

	return cart.Add(product), nil
}

// Saved returns a copy of the saved-bouquet collection.
func (b *Builder) Saved() []domain.CustomBouquet {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.CustomBouquet, len(b.saved))
	copy(out, b.saved)
	return out
}

// RemoveSaved deletes a saved bouquet by ID. Absent IDs are a no-op.
func (b *Builder) RemoveSaved(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, saved := range b.saved {
		if saved.ID == id {
			b.saved = append(b.saved[:i], b.saved[i+1:]...)
			b.persistSaved()
			return
		}
	}
}

func (b *Builder) selectedLocked() []domain.CustomFlower {
	var out []domain.CustomFlower
	for _, f := range b.flowers {
		if f.Quantity > 0 {
			out = append(out, f)
		}
	}
	return out
}

func (b *Builder) totalPriceLocked() int {
	total := 0
	for _, f := range b.flowers {
		total += f.Price * f.Quantity
	}
	return total
}

func (b *Builder) persistSaved() {
	if err := b.store.Save(storage.KeySavedBouquets, b.saved); err != nil {
		log.Printf("bouquet: persist saved bouquets failed: %v", err)
	}
}
