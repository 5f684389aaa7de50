package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/events"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

type memBookingRepo struct {
	items  map[string]*domain.Booking
	nextID int
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{items: map[string]*domain.Booking{}}
}

func (r *memBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	r.nextID++
	booking.ID = "booking-" + strconv.Itoa(r.nextID)
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	copied := *booking
	r.items[booking.ID] = &copied
	return nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	booking, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *booking
	return &copied, nil
}

func (r *memBookingRepo) ListAll(_ context.Context) ([]domain.Booking, error) {
	var items []domain.Booking
	for _, booking := range r.items {
		items = append(items, *booking)
	}
	return items, nil
}

func (r *memBookingRepo) ListByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	var items []domain.Booking
	for _, booking := range r.items {
		if booking.UserID == userID {
			items = append(items, *booking)
		}
	}
	return items, nil
}

func (r *memBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	booking, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	copied := *booking
	return &copied, nil
}

func (r *memBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

type memInfluencerRepo struct {
	items map[string]*domain.Influencer
}

func (r *memInfluencerRepo) Create(_ context.Context, inf *domain.Influencer) error {
	r.items[inf.ID] = inf
	return nil
}

func (r *memInfluencerRepo) Update(_ context.Context, inf *domain.Influencer) error {
	if _, ok := r.items[inf.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.items[inf.ID] = inf
	return nil
}

func (r *memInfluencerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *memInfluencerRepo) GetByID(_ context.Context, id string) (*domain.Influencer, error) {
	inf, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *inf
	return &copied, nil
}

func (r *memInfluencerRepo) List(_ context.Context) ([]domain.Influencer, error) {
	var items []domain.Influencer
	for _, inf := range r.items {
		items = append(items, *inf)
	}
	return items, nil
}

type captureDispatcher struct {
	published []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *captureDispatcher) Subscribe(events.Type, events.Handler) {}

func newTestBookingService() (*BookingService, *memBookingRepo, *captureDispatcher) {
	bookings := newMemBookingRepo()
	dispatcher := &captureDispatcher{}
	influencers := &memInfluencerRepo{items: map[string]*domain.Influencer{
		"inf-1": {ID: "inf-1", Name: "Star", Price: 500},
	}}
	svc := NewBookingService(BookingDependencies{
		BookingRepo:    bookings,
		InfluencerRepo: influencers,
		Dispatcher:     dispatcher,
	})
	return svc, bookings, dispatcher
}

func strPtr(s string) *string {
	return &s
}

func TestBookingService_Create(t *testing.T) {
	t.Parallel()

	svc, _, dispatcher := newTestBookingService()

	booking, err := svc.Create(context.Background(), "user-1", BookingCreateInput{
		Type:         domain.BookingTypeInfluencer,
		InfluencerID: strPtr("inf-1"),
		Date:         time.Now().Add(48 * time.Hour),
		TotalAmount:  500,
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, 1, booking.Guests)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventBookingCreated, dispatcher.published[0].Type)
}

func TestBookingService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestBookingService()
	future := time.Now().Add(48 * time.Hour)

	tests := []struct {
		name     string
		input    BookingCreateInput
		wantCode string
	}{
		{
			name:     "unknown type",
			input:    BookingCreateInput{Type: "hotel", Date: future},
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "missing date",
			input:    BookingCreateInput{Type: domain.BookingTypeInfluencer, InfluencerID: strPtr("inf-1")},
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "missing target id",
			input:    BookingCreateInput{Type: domain.BookingTypeInfluencer, Date: future},
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "unknown influencer",
			input:    BookingCreateInput{Type: domain.BookingTypeInfluencer, InfluencerID: strPtr("ghost"), Date: future},
			wantCode: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Create(context.Background(), "user-1", tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.ToDomainError(err).Code)
		})
	}
}

func TestBookingService_ListFor(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestBookingService()
	future := time.Now().Add(48 * time.Hour)

	_, err := svc.Create(context.Background(), "user-1", BookingCreateInput{
		Type: domain.BookingTypeInfluencer, InfluencerID: strPtr("inf-1"), Date: future, TotalAmount: 500,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "user-2", BookingCreateInput{
		Type: domain.BookingTypeInfluencer, InfluencerID: strPtr("inf-1"), Date: future, TotalAmount: 500,
	})
	require.NoError(t, err)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	all, err := svc.ListFor(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	user := &domain.User{ID: "user-1", Role: domain.UserRoleUser}
	own, err := svc.ListFor(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "user-1", own[0].UserID)
}

func TestBookingService_GetFor_HidesForeignBookings(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestBookingService()
	booking, err := svc.Create(context.Background(), "user-1", BookingCreateInput{
		Type: domain.BookingTypeInfluencer, InfluencerID: strPtr("inf-1"),
		Date: time.Now().Add(48 * time.Hour), TotalAmount: 500,
	})
	require.NoError(t, err)

	other := &domain.User{ID: "user-2", Role: domain.UserRoleUser}
	_, err = svc.GetFor(context.Background(), other, booking.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	got, err := svc.GetFor(context.Background(), admin, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)
}

func TestBookingService_UpdateStatus(t *testing.T) {
	t.Parallel()

	svc, _, dispatcher := newTestBookingService()
	booking, err := svc.Create(context.Background(), "user-1", BookingCreateInput{
		Type: domain.BookingTypeInfluencer, InfluencerID: strPtr("inf-1"),
		Date: time.Now().Add(48 * time.Hour), TotalAmount: 500,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), booking.ID, domain.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)

	require.Len(t, dispatcher.published, 2)
	assert.Equal(t, events.EventBookingStatusChanged, dispatcher.published[1].Type)
	payload, ok := dispatcher.published[1].Payload.(events.BookingStatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, domain.BookingStatusPending, payload.OldStatus)
	assert.Equal(t, domain.BookingStatusConfirmed, payload.NewStatus)

	_, err = svc.UpdateStatus(context.Background(), booking.ID, "shipped")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.UpdateStatus(context.Background(), "ghost", domain.BookingStatusConfirmed)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
