package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// EventsHandler manages event catalog endpoints.
type EventsHandler struct {
	catalog *service.CatalogService
}

// NewEventsHandler constructs the handler.
func NewEventsHandler(catalogService *service.CatalogService) *EventsHandler {
	return &EventsHandler{catalog: catalogService}
}

// List GET /events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	items, err := h.catalog.ListEvents(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.EventResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.NewEventResponse(&items[i]))
	}
	return c.JSON(resp)
}

// Categories GET /events/categories.
func (h *EventsHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(domain.EventCategories())
}

// Get GET /events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	event, err := h.catalog.GetEvent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventResponse(event))
}

// Create POST /events (admin).
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	event := req.ToDomain()
	if err := h.catalog.CreateEvent(c.Context(), event); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewEventResponse(event))
}

// Update PUT /events/:id (admin).
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	event := req.ToDomain()
	event.ID = c.Params("id")
	if err := h.catalog.UpdateEvent(c.Context(), event); err != nil {
		return err
	}
	return c.JSON(dto.NewEventResponse(event))
}

// Delete DELETE /events/:id (admin).
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteEvent(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "event deleted"})
}
