// Package events defines roster change payloads and their publishers.
package events

import "time"

// Event types carried in the event_type message header.
const (
	TypeSignupRecorded      = "roster.signup"
	TypeRegistrationRemoved = "roster.unregistered"
)

// SignupRecorded is emitted after an email is appended to a roster.
type SignupRecorded struct {
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RegistrationRemoved is emitted after an email is removed from a roster.
type RegistrationRemoved struct {
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
