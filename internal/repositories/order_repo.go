package repositories

import (
	"time"

	"github.com/V-Favre/kos/internal/models"
)

// OrderRepository defines the interface for order data access.
//
// Absence is a result, not a failure: GetByID returns (nil, nil) for a
// missing id, and Update/Delete on a missing id succeed while affecting
// nothing. Errors only surface when the storage medium itself fails.
type OrderRepository interface {
	// Create assigns a fresh id and creation timestamp to the order.
	Create(order *models.Order) error
	// Update replaces every field except ID and CreatedAt.
	Update(id uint, order *models.Order) error
	// Delete removes the order; deleting a nonexistent id is a no-op.
	Delete(id uint) error
	GetByID(id uint) (*models.Order, error)
	// ListRecent returns orders created within the trailing window,
	// newest first. The window is a read-time filter only; older rows
	// stay in storage.
	ListRecent(window time.Duration) ([]models.Order, error)
}
