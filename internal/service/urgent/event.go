package urgent

import "time"

// Event is a single urgent-need request consumed from the intake topic.
type Event struct {
	RecipientID int64     `json:"recipient_id"`
	Urgency     string    `json:"urgency"`
	Message     string    `json:"message"`
	RequestedAt time.Time `json:"requested_at"`
}
