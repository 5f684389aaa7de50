package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// QueriesHandler manages contact query endpoints.
type QueriesHandler struct {
	queries *service.QueryService
}

// NewQueriesHandler constructs the handler.
func NewQueriesHandler(queryService *service.QueryService) *QueriesHandler {
	return &QueriesHandler{queries: queryService}
}

// Create POST /queries. Public, no session required.
func (h *QueriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	query, err := h.queries.Create(c.Context(), service.QueryCreateInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		EventType: req.EventType,
		EventDate: req.EventDate,
		Budget:    req.Budget,
		Guests:    req.Guests,
		Message:   req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewQueryResponse(query))
}

// List GET /queries (admin).
func (h *QueriesHandler) List(c *fiber.Ctx) error {
	items, err := h.queries.List(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.QueryResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.NewQueryResponse(&items[i]))
	}
	return c.JSON(resp)
}

// Get GET /queries/:id (admin).
func (h *QueriesHandler) Get(c *fiber.Ctx) error {
	query, err := h.queries.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQueryResponse(query))
}

// UpdateStatus PUT /queries/:id/status (admin).
func (h *QueriesHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateQueryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	query, err := h.queries.UpdateStatus(c.Context(), c.Params("id"), domain.QueryStatus(req.Status), req.AssignedTo)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQueryResponse(query))
}

// Delete DELETE /queries/:id (admin).
func (h *QueriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.queries.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "query deleted"})
}
