package events

import "time"

const TripStatusChangedTopic = "viagem.status-changed"

const (
	TripCreatedEventType  = "trip.created"
	TripApprovedEventType = "trip.approved"
	TripRejectedEventType = "trip.rejected"
)

type TripStatusChangedEvent struct {
	EventType  string    `json:"event_type"`
	TripID     int64     `json:"idViagem"`
	EmployeeID int64     `json:"idEmpregado"`
	StatusID   int64     `json:"idStatusViagem"`
	OccurredAt time.Time `json:"occurred_at"`
}
