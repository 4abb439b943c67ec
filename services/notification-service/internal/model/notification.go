package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidType     = errors.New("invalid notification type")
	ErrInvalidCategory = errors.New("invalid notification category")
	ErrInvalidPriority = errors.New("invalid notification priority")
	ErrInvalidTab      = errors.New("invalid notification tab")
)

// NotificationType is the severity of a notification
type NotificationType string

const (
	TypeUrgent  NotificationType = "urgent"
	TypeWarning NotificationType = "warning"
	TypeInfo    NotificationType = "info"
	TypeSuccess NotificationType = "success"
)

// AllNotificationTypes lists every notification type
var AllNotificationTypes = []NotificationType{TypeUrgent, TypeWarning, TypeInfo, TypeSuccess}

// Category is the hotel domain a notification belongs to
type Category string

const (
	CategoryRoom        Category = "room"
	CategoryBooking     Category = "booking"
	CategoryMaintenance Category = "maintenance"
	CategoryStaff       Category = "staff"
	CategorySystem      Category = "system"
)

// AllCategories lists every category
var AllCategories = []Category{CategoryRoom, CategoryBooking, CategoryMaintenance, CategoryStaff, CategorySystem}

// Priority of a notification
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// AllPriorities lists every priority
var AllPriorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Notification represents a dashboard notification
type Notification struct {
	ID         int              `json:"id"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	CreatedAt  time.Time        `json:"created_at"`
	Type       NotificationType `json:"type"`
	Category   Category         `json:"category"`
	Priority   Priority         `json:"priority"`
	Actionable bool             `json:"actionable"`
	Read       bool             `json:"read"`
	Archived   bool             `json:"archived"`
}

// NotificationCreate represents data for creating a notification
type NotificationCreate struct {
	Title      string     `json:"title" validate:"required,max=200"`
	Message    string     `json:"message" validate:"required,max=2000"`
	Type       string     `json:"type" validate:"required,oneof=urgent warning info success"`
	Category   string     `json:"category" validate:"required,oneof=room booking maintenance staff system"`
	Priority   string     `json:"priority" validate:"required,oneof=high medium low"`
	Actionable bool       `json:"actionable"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// NotificationStats holds the badge counts shown on the notifications page
type NotificationStats struct {
	Total    int `json:"total"`
	Unread   int `json:"unread"`
	Urgent   int `json:"urgent"`
	Archived int `json:"archived"`
}

// NotificationChangeResponse represents the result of a bulk mutation
type NotificationChangeResponse struct {
	Changed int `json:"changed"`
}

// ParseNotificationType converts a string into a NotificationType
func ParseNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	for _, known := range AllNotificationTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// ParseCategory converts a string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	for _, known := range AllCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// ParsePriority converts a string into a Priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	for _, known := range AllPriorities {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}
