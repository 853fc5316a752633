package domain

import "time"

// Bouquet is a catalog product. The catalog is reference data: bouquets are
// created at build time and never mutated at runtime.
type Bouquet struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Flowers       []string `json:"flowers"`
	IsNew         bool     `json:"isNew,omitempty"`
	IsSale        bool     `json:"isSale,omitempty"`
	Rating        float64  `json:"rating"`
}

// CartItem pairs a bouquet snapshot with a quantity. The cart holds at most
// one item per bouquet ID.
type CartItem struct {
	Bouquet  Bouquet `json:"bouquet"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the line price (unit price times quantity).
func (i CartItem) Subtotal() int {
	return i.Bouquet.Price * i.Quantity
}

// CustomFlower is one variant in the bouquet builder. Unlike a cart item the
// full variant catalog is always present; Quantity may be zero.
type CustomFlower struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// CustomBouquet is an immutable snapshot of a builder state at save time.
type CustomBouquet struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Flowers    []CustomFlower `json:"flowers"`
	TotalPrice int            `json:"totalPrice"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// User is the authenticated account. Absent entirely when signed out.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order is created at checkout with status pending and never mutated by the
// client afterwards; later status transitions belong to fulfillment.
type Order struct {
	ID              string      `json:"id"`
	Items           []CartItem  `json:"items"`
	Total           int         `json:"total"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	DeliveryAddress string      `json:"deliveryAddress"`
	DeliveryDate    time.Time   `json:"deliveryDate"`
}

// Promotion is static marketing reference data. Whether a code is honoured
// at checkout is decided by the checkout service, not by this list.
type Promotion struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Discount    int       `json:"discount"`
	Image       string    `json:"image"`
	ValidUntil  time.Time `json:"validUntil"`
	Code        string    `json:"code"`
}

// Category groups catalog bouquets. ID "all" is the unfiltered pseudo
// category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
