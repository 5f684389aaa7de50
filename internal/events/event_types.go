package events

import (
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
)

// Type enumerates supported event identifiers.
type Type string

const (
	EventBookingCreated       Type = "booking_created"
	EventBookingStatusChanged Type = "booking_status_changed"
	EventQuerySubmitted       Type = "query_submitted"
	EventQueryStatusChanged   Type = "query_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      Type        `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	UserID      string             `json:"user_id"`
	Type        domain.BookingType `json:"type"`
	Date        time.Time          `json:"date"`
	Guests      int                `json:"guests"`
	TotalAmount float64            `json:"total_amount"`
}

// BookingStatusChangedPayload payload.
type BookingStatusChangedPayload struct {
	OldStatus domain.BookingStatus `json:"old_status"`
	NewStatus domain.BookingStatus `json:"new_status"`
}

// QuerySubmittedPayload payload.
type QuerySubmittedPayload struct {
	Email     string    `json:"email"`
	EventType string    `json:"event_type"`
	EventDate time.Time `json:"event_date"`
	Budget    float64   `json:"budget"`
}

// QueryStatusChangedPayload payload.
type QueryStatusChangedPayload struct {
	OldStatus  domain.QueryStatus `json:"old_status"`
	NewStatus  domain.QueryStatus `json:"new_status"`
	AssignedTo *string            `json:"assigned_to,omitempty"`
}
