package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/V-Favre/kos/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// It mirrors the store semantics (id assignment, window filter, nature
// invariant) so the app can run without a database.
type MockOrderRepository struct {
	orders map[uint]models.Order
	nextID uint
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[uint]models.Order),
		nextID: 1,
	}
}

// Create adds a new order, assigning the next id and the current time.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	order.CreatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// Update replaces the mutable fields of an order; a missing id is a
// no-op.
func (r *MockOrderRepository) Update(id uint, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.orders[id]
	if !ok {
		return nil
	}
	existing.Name = order.Name
	existing.KebabType = order.KebabType
	existing.Meat = order.Meat
	existing.Sauces = append(models.OptionList(nil), order.Sauces...)
	existing.IsNature = order.IsNature
	existing.Vegetables = append(models.OptionList(nil), order.Vegetables...)
	r.orders[id] = existing
	return nil
}

// Delete removes an order by id, silently ignoring missing ids.
func (r *MockOrderRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.orders, id)
	return nil
}

// GetByID returns an order by its id, or (nil, nil) when absent.
func (r *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	order.ApplyNatureInvariant()
	return &order, nil
}

// ListRecent returns orders created within the trailing window, newest
// first.
func (r *MockOrderRepository) ListRecent(window time.Duration) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := time.Now().Add(-window)
	orders := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if order.CreatedAt.After(cutoff) {
			order.ApplyNatureInvariant()
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
