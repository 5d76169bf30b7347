package models

// Session holds the state bound to one client: an optional authenticated
// identity and the cart, which maps product id to quantity. Logout resets
// both together.
type Session struct {
	ID      string      `json:"id"`
	User    string      `json:"user,omitempty"`
	IsAdmin bool        `json:"is_admin"`
	Cart    map[int]int `json:"cart"`
}
