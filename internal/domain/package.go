package domain

import "time"

// Package is a curated bundle built around an influencer.
type Package struct {
	ID           string
	Name         string
	Description  string
	Price        float64
	Duration     string
	Inclusions   []string
	Category     string
	InfluencerID string
	Influencer   *Influencer
	Available    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
