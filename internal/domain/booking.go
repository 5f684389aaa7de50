package domain

import "time"

// BookingType selects which catalog entity a booking targets.
type BookingType string

const (
	BookingTypeInfluencer BookingType = "influencer"
	BookingTypeEvent      BookingType = "event"
	BookingTypePackage    BookingType = "package"
)

// Valid reports whether the booking type is a known value.
func (t BookingType) Valid() bool {
	switch t {
	case BookingTypeInfluencer, BookingTypeEvent, BookingTypePackage:
		return true
	}
	return false
}

// BookingStatus enumerates booking lifecycle states.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Valid reports whether the status is a known value.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// PaymentStatus enumerates payment settlement states.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking is the aggregate created when a client reserves a catalog entry.
// Exactly one of InfluencerID, EventID, PackageID is set, matching Type.
type Booking struct {
	ID              string
	UserID          string
	Type            BookingType
	InfluencerID    *string
	EventID         *string
	PackageID       *string
	Date            time.Time
	Guests          int
	TotalAmount     float64
	Status          BookingStatus
	SpecialRequests *string
	PaymentStatus   PaymentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
