package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/V-Favre/kos/internal/config"
	"github.com/V-Favre/kos/internal/middleware"
	"github.com/V-Favre/kos/internal/models"
	"github.com/V-Favre/kos/internal/services"
)

// OrderHandler handles HTTP requests for the order board. It only
// translates between JSON and the order service; all business rules
// live below it.
type OrderHandler struct {
	service *services.OrderService
	menu    config.Menu
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, menu config.Menu) *OrderHandler {
	return &OrderHandler{
		service: service,
		menu:    menu,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/menu", h.HandleGetMenu)

	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetBoard)
	orderRoutes.Get("/summary", h.HandleGetSummary)
	orderRoutes.Post("/", h.HandlePlaceOrder)
	orderRoutes.Put("/:id", h.HandleUpdateOrder)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
	orderRoutes.Post("/:id/edit", h.HandleBeginEdit)

	router.Get("/edit", h.HandleTakePendingEdit)
}

// HandleGetMenu returns the option lists the order form is built from.
func (h *OrderHandler) HandleGetMenu(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"kebab_types":       h.menu.KebabTypes,
		"meat_options":      h.menu.Meats,
		"sauce_options":     h.menu.Sauces,
		"vegetable_options": h.menu.Vegetables,
	})
}

// HandleGetBoard returns the active orders, newest first.
func (h *OrderHandler) HandleGetBoard(c *fiber.Ctx) error {
	orders, err := h.service.ListBoard()
	if err != nil {
		log.WithError(err).Error("failed to list board")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	return c.JSON(orders)
}

// HandleGetSummary returns the deduplicated phone-order summary as
// plain text.
func (h *OrderHandler) HandleGetSummary(c *fiber.Ctx) error {
	summary, err := h.service.SummaryText()
	if err != nil {
		log.WithError(err).Error("failed to build summary")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not build summary",
		})
	}
	return c.SendString(summary)
}

// HandlePlaceOrder creates a new order from a raw submission.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var form models.OrderForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.PlaceOrder(form)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid order submission",
				"error":   err.Error(),
			})
		}
		log.WithError(err).Error("failed to place order")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleUpdateOrder replaces an existing order's fields from a raw
// submission.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order id",
		})
	}

	var form models.OrderForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateOrder(id, form); err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid order submission",
				"error":   err.Error(),
			})
		}
		log.WithError(err).Error("failed to update order")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteOrder deletes an order. Deleting an id that is already
// gone still returns 204.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order id",
		})
	}

	if err := h.service.DeleteOrder(id); err != nil {
		log.WithError(err).Error("failed to delete order")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete order",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleBeginEdit marks an order as this session's pending edit target.
func (h *OrderHandler) HandleBeginEdit(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order id",
		})
	}

	h.service.BeginEdit(middleware.SessionID(c), id)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleTakePendingEdit consumes this session's pending edit marker and
// returns the targeted order, or 204 when nothing is pending.
func (h *OrderHandler) HandleTakePendingEdit(c *fiber.Ctx) error {
	order, err := h.service.TakePendingEdit(middleware.SessionID(c))
	if err != nil {
		log.WithError(err).Error("failed to load pending edit")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load pending edit",
		})
	}
	if order == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(order)
}

func parseOrderID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
