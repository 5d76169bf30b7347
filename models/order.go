package models

import "time"

// Order is a finalized checkout. Items is a value snapshot of the cart at
// submission time, not a live reference. Orders are appended to the order
// log and never mutated.
type Order struct {
	ID       string            `json:"id"`
	User     string            `json:"user"`
	Items    map[int]int       `json:"items"`
	Total    float64           `json:"total"`
	Shipping map[string]string `json:"shipping"`
	Date     time.Time         `json:"date"`
}
