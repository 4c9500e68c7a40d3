package model

import (
	"fmt"
	"time"
)

const (
	EntityName = "booking"

	IDPrefix = "BN"
	IDDigits = 6
)

const (
	EventCreated   = "booking.created"
	EventUpdated   = "booking.updated"
	EventCancelled = "booking.cancelled"
)

type Booking struct {
	ID          string
	Name        string
	PhoneNumber string
	Property    string
	// Date is kept exactly as supplied by the caller (DD-MM-YYYY).
	Date       string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Event describes a change in a booking's lifecycle.
type Event struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	Property   string    `json:"property,omitempty"`
	Date       string    `json:"date,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// FormatID renders a booking sequence number as an identifier, e.g. BN000001.
func FormatID(sequence int) string {
	return fmt.Sprintf("%s%0*d", IDPrefix, IDDigits, sequence)
}
