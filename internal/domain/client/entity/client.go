package entity

import (
	"time"
)

// SWOT is a strategic analysis stored on a client, produced by the
// generative assist endpoint
type SWOT struct {
	Strengths     []string  `json:"strengths"`
	Weaknesses    []string  `json:"weaknesses"`
	Opportunities []string  `json:"opportunities"`
	Threats       []string  `json:"threats"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// Client represents an agency client (tenant-level account)
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Segment      string    `json:"segment,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	SWOT         *SWOT     `json:"swot,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate validates the client fields
func (c *Client) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// Objective is a strategic goal belonging to a client. Objectives are
// read-only input to the schedule generator: it rotates through them but
// never creates or mutates them.
type Objective struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate validates the objective fields
func (o *Objective) Validate() error {
	if o.ClientID == "" {
		return ErrEmptyClientID
	}
	if o.Title == "" {
		return ErrEmptyObjectiveTitle
	}
	return nil
}
