package service

import (
	"sort"

	"github.com/sathish19189/Ecommerce-project/models"
	"github.com/sathish19189/Ecommerce-project/store"
)

// Cart applies the cart mutation rules against the live catalog.
type Cart struct {
	catalog  *store.Catalog
	sessions *store.Sessions
}

func NewCart(catalog *store.Catalog, sessions *store.Sessions) *Cart {
	return &Cart{catalog: catalog, sessions: sessions}
}

// Add merges qty into the session's entry for productID. The product must
// exist in the catalog and the quantity must be positive; on failure the
// cart is left unchanged.
func (c *Cart) Add(sessionID string, productID, qty int) error {
	if qty <= 0 {
		return store.ErrInvalidQuantity
	}
	if _, ok := c.catalog.Get(productID); !ok {
		return store.ErrProductNotFound
	}
	return c.sessions.AddToCart(sessionID, productID, qty)
}

// Remove drops the entry for productID. Removing an item that is not in the
// cart is not an error.
func (c *Cart) Remove(sessionID string, productID int) error {
	return c.sessions.RemoveFromCart(sessionID, productID)
}

// Clear empties the cart, keeping the session identity.
func (c *Cart) Clear(sessionID string) error {
	return c.sessions.ClearCart(sessionID)
}

// View resolves the cart against the catalog at call time, so prices are
// always current. Entries whose product no longer exists are skipped and
// excluded from the total.
func (c *Cart) View(sessionID string) ([]models.CartItem, float64, error) {
	cart, err := c.sessions.CartSnapshot(sessionID)
	if err != nil {
		return nil, 0, err
	}

	items := make([]models.CartItem, 0, len(cart))
	var total float64
	for id, qty := range cart {
		product, ok := c.catalog.Get(id)
		if !ok {
			continue
		}
		items = append(items, models.CartItem{Product: product, Quantity: qty})
		total += product.Price * float64(qty)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Product.ID < items[j].Product.ID
	})
	return items, total, nil
}
