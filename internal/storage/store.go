// Package storage is the local-device persistence port. Collections are
// stored as one JSON document per key; a missing or unparsable document is
// reported as absence so callers can degrade to an empty collection.
package storage

// Keys under which the storefront collections round-trip.
const (
	KeyCart          = "cart"
	KeyOrders        = "orders"
	KeySavedBouquets = "savedBouquets"
)

// Store persists one value per key.
type Store interface {
	// Load decodes the document stored under key into v. The bool reports
	// whether a usable document was found; corrupt data counts as absent.
	Load(key string, v any) (bool, error)

	// Save replaces the document stored under key.
	Save(key string, v any) error
}
