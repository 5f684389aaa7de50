package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// InfluencersHandler manages influencer catalog endpoints.
type InfluencersHandler struct {
	catalog *service.CatalogService
}

// NewInfluencersHandler constructs the handler.
func NewInfluencersHandler(catalogService *service.CatalogService) *InfluencersHandler {
	return &InfluencersHandler{catalog: catalogService}
}

// List GET /influencers.
func (h *InfluencersHandler) List(c *fiber.Ctx) error {
	items, err := h.catalog.ListInfluencers(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.InfluencerResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.NewInfluencerResponse(&items[i]))
	}
	return c.JSON(resp)
}

// Get GET /influencers/:id.
func (h *InfluencersHandler) Get(c *fiber.Ctx) error {
	inf, err := h.catalog.GetInfluencer(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewInfluencerResponse(inf))
}

// Create POST /influencers (admin).
func (h *InfluencersHandler) Create(c *fiber.Ctx) error {
	var req dto.InfluencerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	inf := req.ToDomain()
	if err := h.catalog.CreateInfluencer(c.Context(), inf); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewInfluencerResponse(inf))
}

// Update PUT /influencers/:id (admin).
func (h *InfluencersHandler) Update(c *fiber.Ctx) error {
	var req dto.InfluencerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	inf := req.ToDomain()
	inf.ID = c.Params("id")
	if err := h.catalog.UpdateInfluencer(c.Context(), inf); err != nil {
		return err
	}
	return c.JSON(dto.NewInfluencerResponse(inf))
}

// Delete DELETE /influencers/:id (admin).
func (h *InfluencersHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteInfluencer(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "influencer deleted"})
}
