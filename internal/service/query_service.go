package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/events"
	"github.com/spec-kit/booking-service/internal/repository"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// QueryService coordinates contact query intake and triage.
type QueryService struct {
	queries    repository.QueryRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewQueryService builds the service.
func NewQueryService(queries repository.QueryRepository, users repository.UserRepository, dispatcher events.Dispatcher) *QueryService {
	return &QueryService{queries: queries, users: users, dispatcher: dispatcher}
}

// QueryCreateInput describes a public enquiry payload.
type QueryCreateInput struct {
	Name      string
	Email     string
	Phone     string
	EventType string
	EventDate time.Time
	Budget    float64
	Guests    int
	Message   string
}

// Create records an enquiry submitted without authentication.
func (s *QueryService) Create(ctx context.Context, input QueryCreateInput) (*domain.Query, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Phone) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, apperrors.NewValidationError("name, email, phone, message required", nil)
	}
	if input.EventDate.IsZero() {
		return nil, apperrors.NewValidationError("event_date required", nil)
	}

	query := &domain.Query{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		EventType: input.EventType,
		EventDate: input.EventDate,
		Budget:    input.Budget,
		Guests:    input.Guests,
		Message:   input.Message,
		Status:    domain.QueryStatusNew,
	}
	if err := s.queries.Create(ctx, query); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventQuerySubmitted, query.ID, events.QuerySubmittedPayload{
		Email:     query.Email,
		EventType: query.EventType,
		EventDate: query.EventDate,
		Budget:    query.Budget,
	})
	return query, nil
}

// List returns all enquiries for triage.
func (s *QueryService) List(ctx context.Context) ([]domain.Query, error) {
	return s.queries.List(ctx)
}

// Get returns one enquiry or NOT_FOUND.
func (s *QueryService) Get(ctx context.Context, id string) (*domain.Query, error) {
	query, err := s.queries.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("query")
		}
		return nil, err
	}
	return query, nil
}

// UpdateStatus transitions an enquiry and optionally assigns it to an admin.
func (s *QueryService) UpdateStatus(ctx context.Context, id string, status domain.QueryStatus, assignedTo *string) (*domain.Query, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown query status", nil)
	}
	if assignedTo != nil {
		if _, err := s.users.GetByID(ctx, *assignedTo); err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewNotFound("user")
			}
			return nil, err
		}
	}

	current, err := s.queries.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("query")
		}
		return nil, err
	}

	query, err := s.queries.UpdateStatus(ctx, id, status, assignedTo)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("query")
		}
		return nil, err
	}

	s.publish(ctx, events.EventQueryStatusChanged, query.ID, events.QueryStatusChangedPayload{
		OldStatus:  current.Status,
		NewStatus:  query.Status,
		AssignedTo: query.AssignedTo,
	})
	return query, nil
}

// Delete removes an enquiry.
func (s *QueryService) Delete(ctx context.Context, id string) error {
	if err := s.queries.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("query")
		}
		return err
	}
	return nil
}

func (s *QueryService) publish(ctx context.Context, eventType events.Type, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
