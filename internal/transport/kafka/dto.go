package kafka

import (
	"strings"
	"time"

	"bloodlink/internal/service/urgent"
)

// EventDTO is a data transfer object for urgent.Event
type EventDTO struct {
	RecipientID int64     `json:"recipient_id"`
	Urgency     string    `json:"urgency"`
	Message     string    `json:"message"`
	RequestedAt time.Time `json:"requested_at"`
}

// ToDomain converts EventDTO to urgent.Event
func ToDomain(dto EventDTO) urgent.Event {
	return urgent.Event{
		RecipientID: dto.RecipientID,
		Urgency:     strings.TrimSpace(strings.ToLower(dto.Urgency)),
		Message:     strings.TrimSpace(dto.Message),
		RequestedAt: dto.RequestedAt,
	}
}
