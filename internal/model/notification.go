package model

import "time"

// Notification type constants
const (
	NotificationTypeAppointment = "appointment"
	NotificationTypeInventory   = "inventory"
	NotificationTypePayment     = "payment"
	NotificationTypeGeneral     = "general"
)

// Notification is a persisted, user-manageable notification. Distinct from
// live alerts, which are recomputed from current data on every request and
// never stored.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	RelatedID string    `json:"related_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateNotificationRequest represents notification creation parameters
type CreateNotificationRequest struct {
	Type      string `json:"type" binding:"required,oneof=appointment inventory payment general"`
	Title     string `json:"title" binding:"required"`
	Message   string `json:"message" binding:"required"`
	RelatedID string `json:"related_id"`
}

// Alert is an ephemeral notification derived from repository state
type Alert struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	RelatedID string `json:"related_id,omitempty"`
}
