package entity

import (
	"time"
)

// Plan represents a monthly content-planning container owned by one client.
// MonthOfRecord is normalized to the first day of the month and anchors the
// cadence calculation of the schedule generator.
type Plan struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"client_id"`
	Title         string    `json:"title"`
	MonthOfRecord time.Time `json:"month_of_record"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate validates the plan fields
func (p *Plan) Validate() error {
	if p.ClientID == "" {
		return ErrEmptyClientID
	}
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if p.MonthOfRecord.IsZero() {
		return ErrInvalidMonth
	}
	return nil
}

// NormalizeMonth snaps MonthOfRecord to the first day of its month
func (p *Plan) NormalizeMonth() {
	y, m, _ := p.MonthOfRecord.Date()
	p.MonthOfRecord = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
