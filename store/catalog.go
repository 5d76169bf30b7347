package store

import (
	"sync"

	"github.com/sathish19189/Ecommerce-project/models"
)

// Catalog is the in-memory product store. Ids come from a monotonic counter
// and are never reused, so order log entries stay unambiguous after deletes.
type Catalog struct {
	mu       sync.RWMutex
	products map[int]models.Product
	order    []int // insertion order for List
	nextID   int
}

func NewCatalog() *Catalog {
	return &Catalog{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

// Create inserts a new product and returns its id.
func (s *Catalog) Create(input models.ProductInput) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	s.products[id] = models.Product{
		ID:          id,
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Image:       input.Image,
		Description: input.Description,
	}
	s.order = append(s.order, id)
	return id
}

// Update replaces every mutable field of an existing product.
func (s *Catalog) Update(id int, input models.ProductInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return ErrProductNotFound
	}
	s.products[id] = models.Product{
		ID:          id,
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Image:       input.Image,
		Description: input.Description,
	}
	return nil
}

// Delete removes a product. Deleting an absent id returns ErrProductNotFound.
func (s *Catalog) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return ErrProductNotFound
	}
	delete(s.products, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get looks up a product by id.
func (s *Catalog) Get(id int) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[id]
	return product, exists
}

// List returns every product in insertion order.
func (s *Catalog) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, s.products[id])
	}
	return products
}

// ListByCategory returns the products whose category equals category, in
// insertion order. Category validation belongs to the HTTP layer.
func (s *Catalog) ListByCategory(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var products []models.Product
	for _, id := range s.order {
		if p := s.products[id]; p.Category == category {
			products = append(products, p)
		}
	}
	return products
}
