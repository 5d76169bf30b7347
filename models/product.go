package models

// Product categories offered by the store.
const (
	CategoryMens   = "mens"
	CategoryWomens = "womens"
)

// Product represents product data in the system
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// ProductInput holds data for creating/updating a product
type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// ValidCategory reports whether c names a known product category.
func ValidCategory(c string) bool {
	return c == CategoryMens || c == CategoryWomens
}
