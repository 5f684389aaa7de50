package domain

import "time"

// QueryStatus enumerates triage states for contact queries.
type QueryStatus string

const (
	QueryStatusNew       QueryStatus = "new"
	QueryStatusContacted QueryStatus = "contacted"
	QueryStatusResolved  QueryStatus = "resolved"
)

// Valid reports whether the status is a known value.
func (s QueryStatus) Valid() bool {
	switch s {
	case QueryStatusNew, QueryStatusContacted, QueryStatusResolved:
		return true
	}
	return false
}

// Query is an inbound enquiry submitted without authentication.
type Query struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	EventType  string
	EventDate  time.Time
	Budget     float64
	Guests     int
	Message    string
	Status     QueryStatus
	AssignedTo *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
