package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sathish19189/Ecommerce-project/models"
	"github.com/sathish19189/Ecommerce-project/store"
)

// Products serves the public catalog views.
type Products struct {
	catalog *store.Catalog
}

func NewProducts(catalog *store.Catalog) *Products {
	return &Products{catalog: catalog}
}

// List retrieves all products, optionally filtered by category
func (h *Products) List(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusOK, gin.H{"products": h.catalog.List()})
		return
	}

	if !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"products": h.catalog.ListByCategory(category),
	})
}

// Get retrieves a specific product by ID
func (h *Products) Get(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	product, ok := h.catalog.Get(productID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}
