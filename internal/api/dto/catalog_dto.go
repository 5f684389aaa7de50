package dto

import (
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
)

// InfluencerRequest payload for creating or replacing a profile.
type InfluencerRequest struct {
	Name         string             `json:"name"`
	Bio          string             `json:"bio"`
	Expertise    string             `json:"expertise"`
	Category     string             `json:"category"`
	Image        string             `json:"image"`
	Rating       float64            `json:"rating"`
	Price        float64            `json:"price"`
	Social       domain.SocialLinks `json:"socialMedia"`
	Availability *bool              `json:"availability,omitempty"`
	Featured     bool               `json:"featured"`
}

// ToDomain maps the request onto a domain influencer.
func (r InfluencerRequest) ToDomain() *domain.Influencer {
	availability := true
	if r.Availability != nil {
		availability = *r.Availability
	}
	return &domain.Influencer{
		Name:         r.Name,
		Bio:          r.Bio,
		Expertise:    r.Expertise,
		Category:     r.Category,
		Image:        r.Image,
		Rating:       r.Rating,
		Price:        r.Price,
		Social:       r.Social,
		Availability: availability,
		Featured:     r.Featured,
	}
}

// InfluencerResponse is the serialized profile.
type InfluencerResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Bio          string             `json:"bio"`
	Expertise    string             `json:"expertise"`
	Category     string             `json:"category"`
	Image        string             `json:"image"`
	Rating       float64            `json:"rating"`
	Price        float64            `json:"price"`
	Social       domain.SocialLinks `json:"socialMedia"`
	Availability bool               `json:"availability"`
	Featured     bool               `json:"featured"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// NewInfluencerResponse maps a domain influencer to its response shape.
func NewInfluencerResponse(inf *domain.Influencer) InfluencerResponse {
	return InfluencerResponse{
		ID:           inf.ID,
		Name:         inf.Name,
		Bio:          inf.Bio,
		Expertise:    inf.Expertise,
		Category:     inf.Category,
		Image:        inf.Image,
		Rating:       inf.Rating,
		Price:        inf.Price,
		Social:       inf.Social,
		Availability: inf.Availability,
		Featured:     inf.Featured,
		CreatedAt:    inf.CreatedAt,
		UpdatedAt:    inf.UpdatedAt,
	}
}

// EventRequest payload for creating or replacing an event.
type EventRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Location     string    `json:"location"`
	Price        float64   `json:"price"`
	Capacity     int       `json:"capacity"`
	Category     string    `json:"category"`
	Image        string    `json:"image"`
	InfluencerID *string   `json:"influencer_id,omitempty"`
}

// ToDomain maps the request onto a domain event.
func (r EventRequest) ToDomain() *domain.Event {
	return &domain.Event{
		Title:        r.Title,
		Description:  r.Description,
		Date:         r.Date,
		Time:         r.Time,
		Location:     r.Location,
		Price:        r.Price,
		Capacity:     r.Capacity,
		Category:     r.Category,
		Image:        r.Image,
		InfluencerID: r.InfluencerID,
	}
}

// EventResponse is the serialized event.
type EventResponse struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Date         time.Time           `json:"date"`
	Time         string              `json:"time"`
	Location     string              `json:"location"`
	Price        float64             `json:"price"`
	Capacity     int                 `json:"capacity"`
	Category     string              `json:"category"`
	Image        string              `json:"image"`
	Influencer   *InfluencerResponse `json:"influencer,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// NewEventResponse maps a domain event to its response shape.
func NewEventResponse(event *domain.Event) EventResponse {
	resp := EventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
		Location:    event.Location,
		Price:       event.Price,
		Capacity:    event.Capacity,
		Category:    event.Category,
		Image:       event.Image,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
	if event.Influencer != nil {
		inf := NewInfluencerResponse(event.Influencer)
		resp.Influencer = &inf
	}
	return resp
}

// PackageRequest payload for creating or replacing a package.
type PackageRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Duration     string   `json:"duration"`
	Inclusions   []string `json:"inclusions"`
	Category     string   `json:"category"`
	InfluencerID string   `json:"influencer_id"`
	Available    *bool    `json:"available,omitempty"`
}

// ToDomain maps the request onto a domain package.
func (r PackageRequest) ToDomain() *domain.Package {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return &domain.Package{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Duration:     r.Duration,
		Inclusions:   r.Inclusions,
		Category:     r.Category,
		InfluencerID: r.InfluencerID,
		Available:    available,
	}
}

// PackageResponse is the serialized package.
type PackageResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       float64             `json:"price"`
	Duration    string              `json:"duration"`
	Inclusions  []string            `json:"inclusions"`
	Category    string              `json:"category"`
	Influencer  *InfluencerResponse `json:"influencer,omitempty"`
	Available   bool                `json:"available"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// NewPackageResponse maps a domain package to its response shape.
func NewPackageResponse(pkg *domain.Package) PackageResponse {
	resp := PackageResponse{
		ID:          pkg.ID,
		Name:        pkg.Name,
		Description: pkg.Description,
		Price:       pkg.Price,
		Duration:    pkg.Duration,
		Inclusions:  pkg.Inclusions,
		Category:    pkg.Category,
		Available:   pkg.Available,
		CreatedAt:   pkg.CreatedAt,
		UpdatedAt:   pkg.UpdatedAt,
	}
	if pkg.Influencer != nil {
		inf := NewInfluencerResponse(pkg.Influencer)
		resp.Influencer = &inf
	}
	return resp
}
