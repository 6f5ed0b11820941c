package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/V-Favre/kos/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository backed
// by the embedded SQLite database. GORM runs each write in its own
// transaction, so readers never see a half-written row.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create inserts a new order. The database assigns the id; the creation
// timestamp is set here and never touched again.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	order.ID = 0
	order.CreatedAt = time.Now()
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an order. A missing id affects
// zero rows and is not an error (last write wins).
func (r *GORMOrderRepository) Update(id uint, order *models.Order) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       order.Name,
		"kebab_type": order.KebabType,
		"meat":       order.Meat,
		"sauces":     order.Sauces,
		"is_nature":  order.IsNature,
		"vegetables": order.Vegetables,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update order %d: %w", id, res.Error)
	}
	return nil
}

// Delete removes an order by id. Deleting an id that is already gone is
// a no-op.
func (r *GORMOrderRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Order{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	return nil
}

// GetByID retrieves a single order, or (nil, nil) when absent.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	order.ApplyNatureInvariant()
	return &order, nil
}

// ListRecent returns orders created within the trailing window, newest
// first. The id is the tiebreak so ordering stays stable for orders
// sharing a timestamp.
func (r *GORMOrderRepository) ListRecent(window time.Duration) ([]models.Order, error) {
	cutoff := time.Now().Add(-window)
	var orders []models.Order
	err := r.db.Where("created_at > ?", cutoff).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}
	for i := range orders {
		orders[i].ApplyNatureInvariant()
	}
	return orders, nil
}
