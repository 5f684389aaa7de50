package dto

import (
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
)

// CreateBookingRequest payload for reserving a catalog entry.
type CreateBookingRequest struct {
	Type            string    `json:"type"`
	InfluencerID    *string   `json:"influencer_id,omitempty"`
	EventID         *string   `json:"event_id,omitempty"`
	PackageID       *string   `json:"package_id,omitempty"`
	Date            time.Time `json:"date"`
	Guests          int       `json:"guests"`
	TotalAmount     float64   `json:"total_amount"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
}

// UpdateBookingStatusRequest payload for admin status transitions.
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// BookingResponse is the serialized booking.
type BookingResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Type            string    `json:"type"`
	InfluencerID    *string   `json:"influencer_id,omitempty"`
	EventID         *string   `json:"event_id,omitempty"`
	PackageID       *string   `json:"package_id,omitempty"`
	Date            time.Time `json:"date"`
	Guests          int       `json:"guests"`
	TotalAmount     float64   `json:"total_amount"`
	Status          string    `json:"status"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewBookingResponse maps a domain booking to its response shape.
func NewBookingResponse(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              booking.ID,
		UserID:          booking.UserID,
		Type:            string(booking.Type),
		InfluencerID:    booking.InfluencerID,
		EventID:         booking.EventID,
		PackageID:       booking.PackageID,
		Date:            booking.Date,
		Guests:          booking.Guests,
		TotalAmount:     booking.TotalAmount,
		Status:          string(booking.Status),
		SpecialRequests: booking.SpecialRequests,
		PaymentStatus:   string(booking.PaymentStatus),
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
