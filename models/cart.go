package models

// CartItem pairs a resolved product with the quantity held in the cart
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartSummary provides a summary of the cart with totals
type CartSummary struct {
	Items      []CartItem `json:"items"`
	ItemCount  int        `json:"item_count"`
	TotalItems int        `json:"total_items"`
	Total      float64    `json:"total"`
}

// CartItemInput holds data for adding cart items
type CartItemInput struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}
