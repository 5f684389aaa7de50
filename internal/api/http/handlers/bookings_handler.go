package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// BookingsHandler manages booking endpoints.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs the handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookingService}
}

// Create POST /bookings.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewInvalidToken()
	}
	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	booking, err := h.bookings.Create(c.Context(), user.ID, service.BookingCreateInput{
		Type:            domain.BookingType(req.Type),
		InfluencerID:    req.InfluencerID,
		EventID:         req.EventID,
		PackageID:       req.PackageID,
		Date:            req.Date,
		Guests:          req.Guests,
		TotalAmount:     req.TotalAmount,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewBookingResponse(booking))
}

// List GET /bookings. Admins see all bookings, users only their own.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewInvalidToken()
	}
	items, err := h.bookings.ListFor(c.Context(), user)
	if err != nil {
		return err
	}
	resp := make([]dto.BookingResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.NewBookingResponse(&items[i]))
	}
	return c.JSON(resp)
}

// Get GET /bookings/:id.
func (h *BookingsHandler) Get(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewInvalidToken()
	}
	booking, err := h.bookings.GetFor(c.Context(), user, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBookingResponse(booking))
}

// UpdateStatus PUT /bookings/:id/status (admin).
func (h *BookingsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	booking, err := h.bookings.UpdateStatus(c.Context(), c.Params("id"), domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBookingResponse(booking))
}

// Delete DELETE /bookings/:id (admin).
func (h *BookingsHandler) Delete(c *fiber.Ctx) error {
	if err := h.bookings.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "booking deleted"})
}
