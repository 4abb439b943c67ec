package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/events"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/model"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidNotification is returned when a create request fails validation
var ErrInvalidNotification = errors.New("invalid notification")

// NotificationService handles notification operations
type NotificationService struct {
	notificationRepo *repository.NotificationRepository
	publisher        events.Publisher
	publishTimeout   time.Duration
	validate         *validator.Validate
	now              func() time.Time
	logger           *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo *repository.NotificationRepository,
	publisher events.Publisher,
	publishTimeout time.Duration,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		publishTimeout:   publishTimeout,
		validate:         validator.New(),
		now:              time.Now,
		logger:           logger,
	}
}

// CreateNotification appends a new notification to the store
func (s *NotificationService) CreateNotification(ctx context.Context, req *model.NotificationCreate) (model.Notification, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.Notification{}, fmt.Errorf("%w: %v", ErrInvalidNotification, err)
	}

	// enum values were checked by the validator above
	typ, _ := model.ParseNotificationType(req.Type)
	category, _ := model.ParseCategory(req.Category)
	priority, _ := model.ParsePriority(req.Priority)

	createdAt := s.now()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	notification := s.notificationRepo.Add(model.Notification{
		Title:      req.Title,
		Message:    req.Message,
		CreatedAt:  createdAt,
		Type:       typ,
		Category:   category,
		Priority:   priority,
		Actionable: req.Actionable,
	})

	s.logger.Info("Notification created",
		zap.Int("id", notification.ID),
		zap.String("type", string(notification.Type)),
		zap.String("category", string(notification.Category)))

	s.publish(ctx, model.EventCreated, notification.ID, 0)
	return notification, nil
}

// GetNotification retrieves a single notification
func (s *NotificationService) GetNotification(ctx context.Context, id int) (model.Notification, error) {
	return s.notificationRepo.GetByID(id)
}

// MarkAsRead marks a notification as read. Unknown ids are ignored.
func (s *NotificationService) MarkAsRead(ctx context.Context, id int) {
	if s.notificationRepo.MarkRead(id) {
		s.publish(ctx, model.EventRead, id, 0)
	}
}

// MarkAsUnread marks a notification as unread. Unknown ids are ignored.
func (s *NotificationService) MarkAsUnread(ctx context.Context, id int) {
	if s.notificationRepo.MarkUnread(id) {
		s.publish(ctx, model.EventUnread, id, 0)
	}
}

// Archive archives a notification. Unknown ids are ignored.
func (s *NotificationService) Archive(ctx context.Context, id int) {
	if s.notificationRepo.Archive(id) {
		s.publish(ctx, model.EventArchived, id, 0)
	}
}

// Delete removes a notification. Unknown ids are ignored.
func (s *NotificationService) Delete(ctx context.Context, id int) {
	if s.notificationRepo.Delete(id) {
		s.logger.Info("Notification deleted", zap.Int("id", id))
		s.publish(ctx, model.EventDeleted, id, 0)
	}
}

// MarkAllAsRead marks every notification as read
func (s *NotificationService) MarkAllAsRead(ctx context.Context) int {
	changed := s.notificationRepo.MarkAllRead()
	if changed > 0 {
		s.publish(ctx, model.EventAllRead, 0, changed)
	}
	return changed
}

// ArchiveAllRead archives every read notification
func (s *NotificationService) ArchiveAllRead(ctx context.Context) int {
	changed := s.notificationRepo.ArchiveAllRead()
	if changed > 0 {
		s.publish(ctx, model.EventAllReadArchived, 0, changed)
	}
	return changed
}

// GetStats returns the current badge counts
func (s *NotificationService) GetStats(ctx context.Context) model.NotificationStats {
	return s.notificationRepo.Stats()
}

// ListNotifications returns the notifications matching the query
func (s *NotificationService) ListNotifications(ctx context.Context, q model.NotificationQuery) []model.Notification {
	return s.notificationRepo.Query(q)
}

// RecentNotifications returns the first n notifications of the store
func (s *NotificationService) RecentNotifications(ctx context.Context, n int) []model.Notification {
	return s.notificationRepo.Recent(n)
}

// publish emits a lifecycle event. Failures are logged; the state change stands.
func (s *NotificationService) publish(ctx context.Context, eventType model.EventType, notificationID, changed int) {
	event := model.NotificationEvent{
		ID:             uuid.NewString(),
		Type:           eventType,
		NotificationID: notificationID,
		Changed:        changed,
		OccurredAt:     s.now(),
	}

	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish notification event",
			zap.String("event_type", string(eventType)),
			zap.Int("notification_id", notificationID),
			zap.Error(err))
	}
}
