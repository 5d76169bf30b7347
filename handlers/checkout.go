package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sathish19189/Ecommerce-project/middleware"
	"github.com/sathish19189/Ecommerce-project/service"
	"github.com/sathish19189/Ecommerce-project/store"
)

// Checkout finalizes the session's cart into an order.
type Checkout struct {
	checkout *service.Checkout
	log      *logrus.Logger
}

func NewCheckout(checkout *service.Checkout, log *logrus.Logger) *Checkout {
	return &Checkout{checkout: checkout, log: log}
}

// Submit places an order from the current cart. The body is the free-form
// shipping field map from the checkout form.
func (h *Checkout) Submit(c *gin.Context) {
	shipping := make(map[string]string)
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&shipping); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session not found"})
		return
	}

	order, err := h.checkout.Submit(sess.ID, shipping)
	if err != nil {
		var unavailable *service.ItemUnavailableError
		switch {
		case errors.Is(err, store.ErrAuthRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		case errors.Is(err, store.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		case errors.As(err, &unavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error":      unavailable.Error(),
				"product_id": unavailable.ProductID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		}
		return
	}

	h.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user":     order.User,
		"total":    order.Total,
	}).Info("order placed")
	c.JSON(http.StatusCreated, gin.H{
		"message": "order placed successfully",
		"order":   order,
	})
}
