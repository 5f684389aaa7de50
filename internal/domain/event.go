package domain

import "time"

// Event is a scheduled occasion clients can book seats for.
type Event struct {
	ID           string
	Title        string
	Description  string
	Date         time.Time
	Time         string
	Location     string
	Price        float64
	Capacity     int
	Category     string
	Image        string
	InfluencerID *string
	Influencer   *Influencer
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EventCategory is a static browsing category for events.
type EventCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EventCategories returns the fixed set of browsing categories.
func EventCategories() []EventCategory {
	return []EventCategory{
		{ID: 1, Name: "Birthday Party", Description: "Celebrate special birthdays"},
		{ID: 2, Name: "Engagement", Description: "Memorable engagement events"},
		{ID: 3, Name: "Wedding", Description: "Beautiful wedding celebrations"},
		{ID: 4, Name: "Corporate Event", Description: "Professional corporate gatherings"},
		{ID: 5, Name: "Product Launch", Description: "Exciting product releases"},
		{ID: 6, Name: "Charity Event", Description: "Meaningful charity functions"},
		{ID: 7, Name: "Music Concert", Description: "Live music performances"},
		{ID: 8, Name: "Sports Event", Description: "Athletic competitions"},
	}
}
