package seed

import (
	"time"

	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/model"
)

// DefaultNotifications returns the built-in hotel notifications, timed relative to now
func DefaultNotifications(now time.Time) []model.Notification {
	return []model.Notification{
		{
			ID:         1,
			Title:      "Room Cleaning Required",
			Message:    "Room 203 needs immediate cleaning - guest checking in at 3 PM. Housekeeping has been notified.",
			CreatedAt:  now.Add(-5 * time.Minute),
			Type:       model.TypeUrgent,
			Category:   model.CategoryRoom,
			Priority:   model.PriorityHigh,
			Actionable: true,
		},
		{
			ID:         2,
			Title:      "New Booking Received",
			Message:    "Premium suite booked for tomorrow - John Smith. Payment confirmed, welcome package prepared.",
			CreatedAt:  now.Add(-15 * time.Minute),
			Type:       model.TypeSuccess,
			Category:   model.CategoryBooking,
			Priority:   model.PriorityMedium,
			Actionable: true,
		},
		{
			ID:         3,
			Title:      "Check-out Overdue",
			Message:    "Room 201 guest has exceeded check-out time by 2 hours. Front desk should contact guest immediately.",
			CreatedAt:  now.Add(-30 * time.Minute),
			Type:       model.TypeWarning,
			Category:   model.CategoryRoom,
			Priority:   model.PriorityHigh,
			Actionable: true,
		},
		{
			ID:         4,
			Title:      "Maintenance Request",
			Message:    "Air conditioning issue reported in Room 305. Maintenance team dispatched.",
			CreatedAt:  now.Add(-time.Hour),
			Type:       model.TypeInfo,
			Category:   model.CategoryMaintenance,
			Priority:   model.PriorityMedium,
			Actionable: true,
			Read:       true,
		},
		{
			ID:        5,
			Title:     "Staff Schedule Updated",
			Message:   "Tomorrow's housekeeping schedule has been modified. Please review the changes.",
			CreatedAt: now.Add(-2 * time.Hour),
			Type:      model.TypeInfo,
			Category:  model.CategoryStaff,
			Priority:  model.PriorityLow,
			Read:      true,
		},
		{
			ID:        6,
			Title:     "System Backup Completed",
			Message:   "Daily system backup completed successfully at 2:00 AM. All data secured.",
			CreatedAt: now.Add(-6 * time.Hour),
			Type:      model.TypeSuccess,
			Category:  model.CategorySystem,
			Priority:  model.PriorityLow,
			Read:      true,
		},
		{
			ID:         7,
			Title:      "Guest Complaint",
			Message:    "Guest in Room 405 reported noise complaint. Security has been notified.",
			CreatedAt:  now.Add(-8 * time.Hour),
			Type:       model.TypeWarning,
			Category:   model.CategoryRoom,
			Priority:   model.PriorityMedium,
			Actionable: true,
			Read:       true,
		},
		{
			ID:        8,
			Title:     "Payment Processed",
			Message:   "Payment for booking #12345 has been successfully processed. Amount: $450.00",
			CreatedAt: now.Add(-24 * time.Hour),
			Type:      model.TypeSuccess,
			Category:  model.CategoryBooking,
			Priority:  model.PriorityLow,
			Read:      true,
			Archived:  true,
		},
	}
}
