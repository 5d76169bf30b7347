package store

import (
	"sync"

	"github.com/sathish19189/Ecommerce-project/models"
)

// OrderLog is the append-only record of finalized orders. Entries are never
// removed or changed after the fact.
type OrderLog struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderLog() *OrderLog {
	return &OrderLog{}
}

// Append records a finalized order.
func (s *OrderLog) Append(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
}

// List returns a deep copy of every recorded order, oldest first. Mutating
// the result does not touch the log.
func (s *OrderLog) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, copyOrder(o))
	}
	return orders
}

// Len reports how many orders have been recorded.
func (s *OrderLog) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

func copyOrder(o models.Order) models.Order {
	items := make(map[int]int, len(o.Items))
	for id, qty := range o.Items {
		items[id] = qty
	}
	shipping := make(map[string]string, len(o.Shipping))
	for k, v := range o.Shipping {
		shipping[k] = v
	}
	o.Items = items
	o.Shipping = shipping
	return o
}
