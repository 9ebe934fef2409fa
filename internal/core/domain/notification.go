package domain

import "time"

// NotificationType drives the icon the front-end shows.
type NotificationType string

const (
	NotificationEvent        NotificationType = "event"
	NotificationProposal     NotificationType = "proposal"
	NotificationGeneral      NotificationType = "general"
	NotificationDistribution NotificationType = "distribution"
)

// Notification is a record emitted by the core for the view layer.
// Read and Viewed are owned by the view layer; the core never branches on them.
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
	Viewed    bool             `json:"viewed"`
	Type      NotificationType `json:"type"`
}
