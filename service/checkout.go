package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sathish19189/Ecommerce-project/models"
	"github.com/sathish19189/Ecommerce-project/store"
)

// ItemUnavailableError reports a cart entry whose product disappeared from
// the catalog before the order could be placed.
type ItemUnavailableError struct {
	ProductID int
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("product %d is no longer available", e.ProductID)
}

// Checkout turns a session's cart into an order log entry.
type Checkout struct {
	catalog  *store.Catalog
	sessions *store.Sessions
	orders   *store.OrderLog
}

func NewCheckout(catalog *store.Catalog, sessions *store.Sessions, orders *store.OrderLog) *Checkout {
	return &Checkout{catalog: catalog, sessions: sessions, orders: orders}
}

// Submit validates the session and cart, prices the cart against the catalog
// at submission time and appends the resulting order, clearing the cart.
// The total uses current catalog prices, so a price change between viewing
// the cart and submitting changes the charged amount.
//
// A cart entry whose product no longer resolves fails the whole checkout:
// nothing is appended and the cart is left untouched.
func (c *Checkout) Submit(sessionID string, shipping map[string]string) (models.Order, error) {
	sess, ok := c.sessions.Get(sessionID)
	if !ok {
		return models.Order{}, store.ErrSessionNotFound
	}
	if sess.User == "" {
		return models.Order{}, store.ErrAuthRequired
	}

	cart, err := c.sessions.CartSnapshot(sessionID)
	if err != nil {
		return models.Order{}, err
	}
	if len(cart) == 0 {
		return models.Order{}, store.ErrEmptyCart
	}

	var total float64
	for id, qty := range cart {
		product, ok := c.catalog.Get(id)
		if !ok {
			return models.Order{}, &ItemUnavailableError{ProductID: id}
		}
		total += product.Price * float64(qty)
	}

	if shipping == nil {
		shipping = make(map[string]string)
	}
	order := models.Order{
		ID:       uuid.New().String(),
		User:     sess.User,
		Items:    cart, // already a value copy
		Total:    total,
		Shipping: shipping,
		Date:     time.Now(),
	}

	c.orders.Append(order)
	if err := c.sessions.ClearCart(sessionID); err != nil {
		return models.Order{}, err
	}
	return order, nil
}
