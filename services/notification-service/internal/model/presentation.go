package model

import "fmt"

// Badge variants understood by the dashboard front end
const (
	BadgeDestructive = "destructive"
	BadgeSecondary   = "secondary"
	BadgeDefault     = "default"
	BadgeOutline     = "outline"
)

// Icon returns the icon name and color class for a notification type
func (t NotificationType) Icon() (name, color string) {
	switch t {
	case TypeUrgent:
		return "alert-triangle", "text-red-500"
	case TypeWarning:
		return "alert-triangle", "text-yellow-500"
	case TypeSuccess:
		return "check-circle", "text-green-500"
	case TypeInfo:
		return "info", "text-blue-500"
	}
	panic(fmt.Sprintf("unhandled notification type %q", string(t)))
}

// BadgeVariant returns the badge style for a notification type
func (t NotificationType) BadgeVariant() string {
	switch t {
	case TypeUrgent:
		return BadgeDestructive
	case TypeWarning:
		return BadgeSecondary
	case TypeSuccess:
		return BadgeDefault
	case TypeInfo:
		return BadgeOutline
	}
	panic(fmt.Sprintf("unhandled notification type %q", string(t)))
}

// Color returns the text and background classes for a priority
func (p Priority) Color() string {
	switch p {
	case PriorityHigh:
		return "text-red-600 bg-red-50 dark:bg-red-950/20"
	case PriorityMedium:
		return "text-yellow-600 bg-yellow-50 dark:bg-yellow-950/20"
	case PriorityLow:
		return "text-green-600 bg-green-50 dark:bg-green-950/20"
	}
	panic(fmt.Sprintf("unhandled notification priority %q", string(p)))
}

// Label returns the display name of a category
func (c Category) Label() string {
	switch c {
	case CategoryRoom:
		return "Room"
	case CategoryBooking:
		return "Booking"
	case CategoryMaintenance:
		return "Maintenance"
	case CategoryStaff:
		return "Staff"
	case CategorySystem:
		return "System"
	}
	panic(fmt.Sprintf("unhandled notification category %q", string(c)))
}

// HeaderBadgeVariant returns the variant of the bell badge in the header.
// An empty string means the badge is hidden.
func HeaderBadgeVariant(unread, urgentUnread int) string {
	if unread == 0 {
		return ""
	}
	if urgentUnread > 0 {
		return BadgeDestructive
	}
	return BadgeDefault
}

// NotificationView is a notification decorated for display
type NotificationView struct {
	Notification
	TimeAgo       string `json:"time_ago"`
	Icon          string `json:"icon"`
	IconColor     string `json:"icon_color"`
	BadgeVariant  string `json:"badge_variant"`
	PriorityColor string `json:"priority_color"`
	CategoryLabel string `json:"category_label"`
}

// PanelView is the compact notification panel in the dashboard header
type PanelView struct {
	Notifications      []NotificationView `json:"notifications"`
	UnreadCount        int                `json:"unread_count"`
	UrgentUnreadCount  int                `json:"urgent_unread_count"`
	HeaderBadgeVariant string             `json:"header_badge_variant,omitempty"`
}

// PageView is the filtered list shown on the notifications page
type PageView struct {
	Notifications []NotificationView `json:"notifications"`
	Stats         NotificationStats  `json:"stats"`
}
