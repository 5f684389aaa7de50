package dto

import (
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
)

// CreateQueryRequest payload for public enquiries.
type CreateQueryRequest struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	EventType string    `json:"eventType"`
	EventDate time.Time `json:"eventDate"`
	Budget    float64   `json:"budget"`
	Guests    int       `json:"guests"`
	Message   string    `json:"message"`
}

// UpdateQueryStatusRequest payload for admin triage.
type UpdateQueryStatusRequest struct {
	Status     string  `json:"status"`
	AssignedTo *string `json:"assignedTo,omitempty"`
}

// QueryResponse is the serialized enquiry.
type QueryResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	EventType  string    `json:"eventType"`
	EventDate  time.Time `json:"eventDate"`
	Budget     float64   `json:"budget"`
	Guests     int       `json:"guests"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	AssignedTo *string   `json:"assignedTo,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewQueryResponse maps a domain query to its response shape.
func NewQueryResponse(query *domain.Query) QueryResponse {
	return QueryResponse{
		ID:         query.ID,
		Name:       query.Name,
		Email:      query.Email,
		Phone:      query.Phone,
		EventType:  query.EventType,
		EventDate:  query.EventDate,
		Budget:     query.Budget,
		Guests:     query.Guests,
		Message:    query.Message,
		Status:     string(query.Status),
		AssignedTo: query.AssignedTo,
		CreatedAt:  query.CreatedAt,
		UpdatedAt:  query.UpdatedAt,
	}
}
