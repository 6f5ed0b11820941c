package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/V-Favre/kos/internal/config"
	"github.com/V-Favre/kos/internal/models"
	"github.com/V-Favre/kos/internal/repositories"
)

// ErrValidation marks a rejected submission. Callers can errors.Is
// against it to distinguish a bad request from a storage failure.
var ErrValidation = errors.New("validation failed")

// OrderService handles the order lifecycle: normalizing submissions,
// persisting them, and producing the board and phone summary views.
type OrderService struct {
	repo     repositories.OrderRepository
	sessions *EditSessionManager
	cfg      *config.Config
	validate *validator.Validate
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repositories.OrderRepository, sessions *EditSessionManager, cfg *config.Config) *OrderService {
	return &OrderService{
		repo:     repo,
		sessions: sessions,
		cfg:      cfg,
		validate: validator.New(),
	}
}

// normalize validates the submission's required fields and resolves it
// into a canonical order payload.
func (s *OrderService) normalize(form models.OrderForm) (models.Order, error) {
	if err := s.validate.Struct(form); err != nil {
		return models.Order{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return form.Normalize(s.cfg.Menu), nil
}

// PlaceOrder normalizes a raw submission and persists it, returning the
// stored order with its assigned id and timestamp.
func (s *OrderService) PlaceOrder(form models.OrderForm) (*models.Order, error) {
	order, err := s.normalize(form)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(&order); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	log.WithFields(log.Fields{
		"order_id":   order.ID,
		"kebab_type": order.KebabType,
		"meat":       order.Meat,
	}).Info("order placed")
	return &order, nil
}

// UpdateOrder normalizes a raw submission and replaces the mutable
// fields of an existing order. Updating an id that no longer exists is
// a silent no-op (last write wins).
func (s *OrderService) UpdateOrder(id uint, form models.OrderForm) error {
	order, err := s.normalize(form)
	if err != nil {
		return err
	}
	if err := s.repo.Update(id, &order); err != nil {
		return fmt.Errorf("failed to update order %d: %w", id, err)
	}
	log.WithField("order_id", id).Info("order updated")
	return nil
}

// DeleteOrder removes an order. Deleting an already-deleted id succeeds.
func (s *OrderService) DeleteOrder(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	log.WithField("order_id", id).Info("order deleted")
	return nil
}

// GetOrderByID retrieves a single order, or (nil, nil) when absent.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.repo.GetByID(id)
}

// ListBoard returns the active orders: everything created within the
// configured trailing window, newest first.
func (s *OrderService) ListBoard() ([]models.Order, error) {
	return s.repo.ListRecent(s.cfg.OrderWindow)
}

// SummaryText builds the deduplicated phone-order summary over the
// active orders.
func (s *OrderService) SummaryText() (string, error) {
	orders, err := s.repo.ListRecent(s.cfg.OrderWindow)
	if err != nil {
		return "", fmt.Errorf("failed to build summary: %w", err)
	}
	return Summarize(orders, s.cfg.Menu), nil
}

// BeginEdit marks an order as the session's pending edit target.
func (s *OrderService) BeginEdit(sessionID string, orderID uint) {
	s.sessions.RequestEdit(sessionID, orderID)
}

// TakePendingEdit consumes the session's pending edit marker and loads
// the targeted order. Returns (nil, nil) when nothing is pending or the
// order has since been deleted.
func (s *OrderService) TakePendingEdit(sessionID string) (*models.Order, error) {
	id, ok := s.sessions.TakePendingEdit(sessionID)
	if !ok {
		return nil, nil
	}
	return s.repo.GetByID(id)
}
