package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/events"
	"github.com/spec-kit/booking-service/internal/repository"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// BookingService coordinates booking workflows.
type BookingService struct {
	bookings    repository.BookingRepository
	influencers repository.InfluencerRepository
	eventsRepo  repository.EventRepository
	packages    repository.PackageRepository
	dispatcher  events.Dispatcher
}

// BookingDependencies bundles repositories for the booking service.
type BookingDependencies struct {
	BookingRepo    repository.BookingRepository
	InfluencerRepo repository.InfluencerRepository
	EventRepo      repository.EventRepository
	PackageRepo    repository.PackageRepository
	Dispatcher     events.Dispatcher
}

// NewBookingService builds the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		bookings:    deps.BookingRepo,
		influencers: deps.InfluencerRepo,
		eventsRepo:  deps.EventRepo,
		packages:    deps.PackageRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// BookingCreateInput describes a booking creation payload.
type BookingCreateInput struct {
	Type            domain.BookingType
	InfluencerID    *string
	EventID         *string
	PackageID       *string
	Date            time.Time
	Guests          int
	TotalAmount     float64
	SpecialRequests *string
}

// Create records a booking owned by userID after checking the target exists.
func (s *BookingService) Create(ctx context.Context, userID string, input BookingCreateInput) (*domain.Booking, error) {
	if !input.Type.Valid() {
		return nil, apperrors.NewValidationError("unknown booking type", nil)
	}
	if input.Date.IsZero() {
		return nil, apperrors.NewValidationError("date required", nil)
	}
	if err := s.checkTarget(ctx, input); err != nil {
		return nil, err
	}

	guests := input.Guests
	if guests <= 0 {
		guests = 1
	}

	booking := &domain.Booking{
		UserID:          userID,
		Type:            input.Type,
		InfluencerID:    input.InfluencerID,
		EventID:         input.EventID,
		PackageID:       input.PackageID,
		Date:            input.Date,
		Guests:          guests,
		TotalAmount:     input.TotalAmount,
		Status:          domain.BookingStatusPending,
		SpecialRequests: input.SpecialRequests,
		PaymentStatus:   domain.PaymentStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventBookingCreated, booking.ID, events.BookingCreatedPayload{
		UserID:      booking.UserID,
		Type:        booking.Type,
		Date:        booking.Date,
		Guests:      booking.Guests,
		TotalAmount: booking.TotalAmount,
	})
	return booking, nil
}

// ListFor returns all bookings for admins and own bookings for everyone else.
func (s *BookingService) ListFor(ctx context.Context, user *domain.User) ([]domain.Booking, error) {
	if user.Role == domain.UserRoleAdmin {
		return s.bookings.ListAll(ctx)
	}
	return s.bookings.ListByUser(ctx, user.ID)
}

// GetFor returns one booking; non-admins can only see their own.
func (s *BookingService) GetFor(ctx context.Context, user *domain.User, id string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("booking")
		}
		return nil, err
	}
	if user.Role != domain.UserRoleAdmin && booking.UserID != user.ID {
		return nil, apperrors.NewNotFound("booking")
	}
	return booking, nil
}

// UpdateStatus transitions a booking to the given status.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown booking status", nil)
	}
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("booking")
		}
		return nil, err
	}

	booking, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("booking")
		}
		return nil, err
	}

	s.publish(ctx, events.EventBookingStatusChanged, booking.ID, events.BookingStatusChangedPayload{
		OldStatus: current.Status,
		NewStatus: booking.Status,
	})
	return booking, nil
}

// Delete removes a booking.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("booking")
		}
		return err
	}
	return nil
}

func (s *BookingService) checkTarget(ctx context.Context, input BookingCreateInput) error {
	switch input.Type {
	case domain.BookingTypeInfluencer:
		if input.InfluencerID == nil {
			return apperrors.NewValidationError("influencer_id required", nil)
		}
		if _, err := s.influencers.GetByID(ctx, *input.InfluencerID); err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewNotFound("influencer")
			}
			return err
		}
	case domain.BookingTypeEvent:
		if input.EventID == nil {
			return apperrors.NewValidationError("event_id required", nil)
		}
		if _, err := s.eventsRepo.GetByID(ctx, *input.EventID); err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewNotFound("event")
			}
			return err
		}
	case domain.BookingTypePackage:
		if input.PackageID == nil {
			return apperrors.NewValidationError("package_id required", nil)
		}
		if _, err := s.packages.GetByID(ctx, *input.PackageID); err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewNotFound("package")
			}
			return err
		}
	}
	return nil
}

func (s *BookingService) publish(ctx context.Context, eventType events.Type, subjectID string, payload interface{}) {
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
