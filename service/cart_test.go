package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathish19189/Ecommerce-project/models"
	"github.com/sathish19189/Ecommerce-project/store"
)

func newCartFixture(t *testing.T) (*Cart, *store.Catalog, string) {
	t.Helper()
	catalog := store.NewCatalog()
	sessions := store.NewSessions()
	sess := sessions.Create()
	return NewCart(catalog, sessions), catalog, sess.ID
}

func addProduct(catalog *store.Catalog, name string, price float64) int {
	return catalog.Create(models.ProductInput{
		Name:     name,
		Category: models.CategoryMens,
		Price:    price,
	})
}

func TestCart_AddUnknownProduct(t *testing.T) {
	cart, _, sessionID := newCartFixture(t)

	err := cart.Add(sessionID, 42, 1)
	assert.ErrorIs(t, err, store.ErrProductNotFound)

	items, total, err := cart.View(sessionID)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestCart_AddNonPositiveQuantity(t *testing.T) {
	cart, catalog, sessionID := newCartFixture(t)
	id := addProduct(catalog, "Shirt", 29.99)

	for _, qty := range []int{0, -1, -100} {
		err := cart.Add(sessionID, id, qty)
		assert.ErrorIs(t, err, store.ErrInvalidQuantity, "qty %d", qty)
	}

	items, _, err := cart.View(sessionID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCart_AddMergesQuantities(t *testing.T) {
	cart, catalog, sessionID := newCartFixture(t)
	id := addProduct(catalog, "Shirt", 29.99)

	require.NoError(t, cart.Add(sessionID, id, 2))
	require.NoError(t, cart.Add(sessionID, id, 3))

	items, _, err := cart.View(sessionID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCart_ViewUsesLivePrices(t *testing.T) {
	cart, catalog, sessionID := newCartFixture(t)
	id := addProduct(catalog, "Shirt", 29.99)

	require.NoError(t, cart.Add(sessionID, id, 2))
	_, total, err := cart.View(sessionID)
	require.NoError(t, err)
	assert.InDelta(t, 59.98, total, 1e-9)

	// Price change after the item was added shows up in the next view
	require.NoError(t, catalog.Update(id, models.ProductInput{
		Name:     "Shirt",
		Category: models.CategoryMens,
		Price:    19.99,
	}))
	_, total, err = cart.View(sessionID)
	require.NoError(t, err)
	assert.InDelta(t, 39.98, total, 1e-9)
}

func TestCart_ViewPrunesDeletedProducts(t *testing.T) {
	cart, catalog, sessionID := newCartFixture(t)
	kept := addProduct(catalog, "Kept", 10)
	doomed := addProduct(catalog, "Doomed", 20)

	require.NoError(t, cart.Add(sessionID, kept, 1))
	require.NoError(t, cart.Add(sessionID, doomed, 1))
	require.NoError(t, catalog.Delete(doomed))

	items, total, err := cart.View(sessionID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, kept, items[0].Product.ID)
	assert.InDelta(t, 10, total, 1e-9)
}

func TestCart_RemoveAbsentIsNoop(t *testing.T) {
	cart, catalog, sessionID := newCartFixture(t)
	id := addProduct(catalog, "Shirt", 29.99)
	require.NoError(t, cart.Add(sessionID, id, 1))

	require.NoError(t, cart.Remove(sessionID, 999))

	items, _, err := cart.View(sessionID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCart_ViewSortsByProductID(t *testing.T) {
	cart, catalog, sessionID := newCartFixture(t)
	a := addProduct(catalog, "A", 1)
	b := addProduct(catalog, "B", 2)
	c := addProduct(catalog, "C", 3)

	require.NoError(t, cart.Add(sessionID, c, 1))
	require.NoError(t, cart.Add(sessionID, a, 1))
	require.NoError(t, cart.Add(sessionID, b, 1))

	items, _, err := cart.View(sessionID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int{a, b, c}, []int{items[0].Product.ID, items[1].Product.ID, items[2].Product.ID})
}

func TestCart_UnknownSession(t *testing.T) {
	catalog := store.NewCatalog()
	cart := NewCart(catalog, store.NewSessions())
	id := addProduct(catalog, "Shirt", 29.99)

	assert.ErrorIs(t, cart.Add("missing", id, 1), store.ErrSessionNotFound)
	_, _, err := cart.View("missing")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}
