package notify

import "context"

// Payload is the message delivered to a single donor.
type Payload struct {
	AlertID string `json:"alert_id"`
	Message string `json:"message"`
	Urgency string `json:"urgency"`
}

// Gateway delivers a payload to one donor. Fire-and-forget from the
// caller's point of view: no response body, only success or failure.
type Gateway interface {
	Notify(ctx context.Context, donorID int64, p Payload) error
}
