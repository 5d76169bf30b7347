package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sathish19189/Ecommerce-project/models"
	"github.com/sathish19189/Ecommerce-project/store"
)

// Admin handles catalog management and the order log view. Authorization is
// enforced by the admin middleware on the route group.
type Admin struct {
	catalog *store.Catalog
	orders  *store.OrderLog
	log     *logrus.Logger
}

func NewAdmin(catalog *store.Catalog, orders *store.OrderLog, log *logrus.Logger) *Admin {
	return &Admin{catalog: catalog, orders: orders, log: log}
}

// ListProducts returns the full catalog for the admin view
func (h *Admin) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.catalog.List()})
}

// CreateProduct adds a new product
func (h *Admin) CreateProduct(c *gin.Context) {
	var input models.ProductInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	id := h.catalog.Create(input)
	h.log.WithFields(logrus.Fields{"product_id": id, "name": input.Name}).Info("product created")
	c.JSON(http.StatusCreated, gin.H{
		"message":    "product created successfully",
		"product_id": id,
	})
}

// UpdateProduct replaces all mutable fields of a product
func (h *Admin) UpdateProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	if err := h.catalog.Update(productID, input); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated successfully"})
}

// DeleteProduct removes a product. Cart entries referencing it are pruned
// lazily when the cart is next viewed.
func (h *Admin) DeleteProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	if err := h.catalog.Delete(productID); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	h.log.WithField("product_id", productID).Info("product deleted")
	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}

// ListOrders returns every recorded order, oldest first
func (h *Admin) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.orders.List()})
}
