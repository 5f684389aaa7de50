package domain

import "time"

// SocialLinks holds optional social media handles for an influencer.
type SocialLinks struct {
	Instagram *string `json:"instagram,omitempty"`
	YouTube   *string `json:"youtube,omitempty"`
	TikTok    *string `json:"tiktok,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
}

// Influencer is a bookable catalog profile.
type Influencer struct {
	ID           string
	Name         string
	Bio          string
	Expertise    string
	Category     string
	Image        string
	Rating       float64
	Price        float64
	Social       SocialLinks
	Availability bool
	Featured     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
