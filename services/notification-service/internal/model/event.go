package model

import "time"

// EventType identifies a notification lifecycle transition
type EventType string

const (
	EventCreated         EventType = "notification.created"
	EventRead            EventType = "notification.read"
	EventUnread          EventType = "notification.unread"
	EventArchived        EventType = "notification.archived"
	EventDeleted         EventType = "notification.deleted"
	EventAllRead         EventType = "notification.all_read"
	EventAllReadArchived EventType = "notification.all_read_archived"
)

// NotificationEvent describes a state change of the notification store.
// NotificationID is zero for bulk events, which carry Changed instead.
type NotificationEvent struct {
	ID             string    `json:"id"`
	Type           EventType `json:"type"`
	NotificationID int       `json:"notification_id,omitempty"`
	Changed        int       `json:"changed,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
