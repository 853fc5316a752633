// Package checkout validates and places orders: delivery details, promo
// codes, the delivery fee, and the persisted order history.
package checkout

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
	"github.com/Galyna-kud/flowers-of-happiness/internal/identity"
	"github.com/Galyna-kud/flowers-of-happiness/internal/storage"
)

const (
	// FreeDeliveryThreshold is the subtotal at which delivery becomes free.
	FreeDeliveryThreshold = 2000
	// StandardDeliveryFee is the flat fee below the threshold.
	StandardDeliveryFee = 150
)

var (
	ErrEmptyCart           = errors.New("cart is empty, nothing to checkout")
	ErrMissingDeliveryInfo = errors.New("delivery address and date are required")
	ErrPastDeliveryDate    = errors.New("delivery date is in the past")
	ErrInvalidPromoCode    = errors.New("unknown promo code")
)

// Recognized promo codes and their subtotal discount rates.
var promoRates = map[string]float64{
	"SPRING20": 0.20,
	"LOVE15":   0.15,
}

// DeliveryFee is zero once the subtotal reaches the free-delivery threshold,
// otherwise the flat standard fee.
func DeliveryFee(subtotal int) int {
	if subtotal >= FreeDeliveryThreshold {
		return 0
	}
	return StandardDeliveryFee
}

// Discount resolves a promo code against the subtotal, rounding to the
// nearest whole currency unit. Unknown codes fail with ErrInvalidPromoCode.
func Discount(code string, subtotal int) (int, error) {
	rate, ok := promoRates[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return 0, ErrInvalidPromoCode
	}
	return int(math.Round(float64(subtotal) * rate)), nil
}

// Session is the slice of the identity contract checkout needs.
type Session interface {
	CurrentUser() (domain.User, bool)
}

// Cart is the slice of the cart aggregator checkout consumes.
type Cart interface {
	Items() []domain.CartItem
	TotalPrice() int
	Clear()
}

// PlaceRequest carries the checkout form. The idempotency key is assigned by
// the submitting client; a repeated key returns the already-placed order
// instead of placing a second one.
type PlaceRequest struct {
	Address        string
	DeliveryDate   time.Time
	PromoCode      string
	IdempotencyKey string
}

type Service struct {
	mu     sync.Mutex
	orders []domain.Order
	placed map[string]string // idempotency key -> order ID

	store   storage.Store
	cart    Cart
	session Session
	sfg     singleflight.Group
}

// New restores the order history from the store. Missing or corrupt data
// starts an empty history.
func New(store storage.Store, cart Cart, session Session) *Service {
	s := &Service{
		store:   store,
		cart:    cart,
		session: session,
		placed:  make(map[string]string),
	}
	if _, err := store.Load(storage.KeyOrders, &s.orders); err != nil {
		log.Printf("checkout: restore orders failed, starting empty: %v", err)
		s.orders = nil
	}
	return s
}

// Place validates the request and creates a pending order from the current
// cart, prepends it to the history, persists, and clears the cart. State is
// untouched when any validation fails. Duplicate submissions sharing an
// idempotency key collapse onto one order.
func (s *Service) Place(req PlaceRequest) (domain.Order, error) {
	key := req.IdempotencyKey
	if key == "" {
		// No key means no dedupe; each submission stands alone.
		key = uuid.NewString()
	}

	v, err, _ := s.sfg.Do(key, func() (any, error) {
		return s.place(key, req)
	})
	if err != nil {
		return domain.Order{}, err
	}
	return v.(domain.Order), nil
}

func (s *Service) place(key string, req PlaceRequest) (domain.Order, error) {
	if _, ok := s.session.CurrentUser(); !ok {
		return domain.Order{}, identity.ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if orderID, done := s.placed[key]; done {
		for _, o := range s.orders {
			if o.ID == orderID {
				return o, nil
			}
		}
		return domain.Order{}, fmt.Errorf("order %s placed but missing from history", orderID)
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	if strings.TrimSpace(req.Address) == "" || req.DeliveryDate.IsZero() {
		return domain.Order{}, ErrMissingDeliveryInfo
	}
	if req.DeliveryDate.Before(time.Now()) {
		return domain.Order{}, ErrPastDeliveryDate
	}

	subtotal := s.cart.TotalPrice()
	discount := 0
	if strings.TrimSpace(req.PromoCode) != "" {
		var err error
		if discount, err = Discount(req.PromoCode, subtotal); err != nil {
			return domain.Order{}, err
		}
	}

	order := domain.Order{
		ID:              uuid.NewString(),
		Items:           items,
		Total:           subtotal + DeliveryFee(subtotal) - discount,
		Status:          domain.OrderStatusPending,
		CreatedAt:       time.Now(),
		DeliveryAddress: req.Address,
		DeliveryDate:    req.DeliveryDate,
	}

	s.orders = append([]domain.Order{order}, s.orders...)
	s.placed[key] = order.ID
	s.persist()
	s.cart.Clear()
	return order, nil
}

// Orders returns a copy of the history, most recent first.
func (s *Service) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Service) persist() {
	if err := s.store.Save(storage.KeyOrders, s.orders); err != nil {
		log.Printf("checkout: persist orders failed: %v", err)
	}
}
