package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sathish19189/Ecommerce-project/middleware"
	"github.com/sathish19189/Ecommerce-project/models"
	"github.com/sathish19189/Ecommerce-project/service"
	"github.com/sathish19189/Ecommerce-project/store"
)

// Cart serves the session-scoped shopping cart.
type Cart struct {
	cart *service.Cart
}

func NewCart(cart *service.Cart) *Cart {
	return &Cart{cart: cart}
}

// Get retrieves the session's current cart
func (h *Cart) Get(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session not found"})
		return
	}

	items, total, err := h.cart.View(sess.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cart"})
		return
	}

	var totalItems int
	for _, item := range items {
		totalItems += item.Quantity
	}
	c.JSON(http.StatusOK, gin.H{"cart": models.CartSummary{
		Items:      items,
		ItemCount:  len(items),
		TotalItems: totalItems,
		Total:      total,
	}})
}

// AddItem adds a product to the cart, merging quantities
func (h *Cart) AddItem(c *gin.Context) {
	var input models.CartItemInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session not found"})
		return
	}

	if err := h.cart.Add(sess.ID, input.ProductID, input.Quantity); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
		case errors.Is(err, store.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item to cart"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item added to cart"})
}

// RemoveItem removes a product from the cart; absent items are a no-op
func (h *Cart) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session not found"})
		return
	}

	if err := h.cart.Remove(sess.ID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item from cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item removed from cart"})
}

// Clear removes all items from the cart
func (h *Cart) Clear(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session not found"})
		return
	}

	if err := h.cart.Clear(sess.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
