package service

import (
	"context"
	"time"

	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/model"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/utils"

	"go.uber.org/zap"
)

// DashboardService builds the header panel and the notifications page
// from the shared notification store
type DashboardService struct {
	notificationService *NotificationService
	recentLimit         int
	now                 func() time.Time
	logger              *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(notificationService *NotificationService, recentLimit int, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		notificationService: notificationService,
		recentLimit:         recentLimit,
		now:                 time.Now,
		logger:              logger,
	}
}

// RecentLimit is the default number of notifications in the header panel
func (s *DashboardService) RecentLimit() int {
	return s.recentLimit
}

// GetPanel builds the header panel. A non-positive limit uses the configured default.
func (s *DashboardService) GetPanel(ctx context.Context, limit int) model.PanelView {
	if limit <= 0 {
		limit = s.recentLimit
	}

	stats := s.notificationService.GetStats(ctx)
	recent := s.notificationService.RecentNotifications(ctx, limit)

	return model.PanelView{
		Notifications:      s.decorateAll(recent),
		UnreadCount:        stats.Unread,
		UrgentUnreadCount:  stats.Urgent,
		HeaderBadgeVariant: model.HeaderBadgeVariant(stats.Unread, stats.Urgent),
	}
}

// GetPage builds the filtered notifications page
func (s *DashboardService) GetPage(ctx context.Context, q model.NotificationQuery) model.PageView {
	notifications := s.notificationService.ListNotifications(ctx, q)

	s.logger.Debug("Notifications page queried",
		zap.String("search", q.SearchTerm),
		zap.String("category", string(q.Category)),
		zap.String("type", string(q.Type)),
		zap.String("tab", string(q.Tab)),
		zap.Int("results", len(notifications)))

	return model.PageView{
		Notifications: s.decorateAll(notifications),
		Stats:         s.notificationService.GetStats(ctx),
	}
}

func (s *DashboardService) decorateAll(notifications []model.Notification) []model.NotificationView {
	now := s.now()
	views := make([]model.NotificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, decorate(n, now))
	}
	return views
}

func decorate(n model.Notification, now time.Time) model.NotificationView {
	icon, iconColor := n.Type.Icon()
	return model.NotificationView{
		Notification:  n,
		TimeAgo:       utils.TimeAgo(n.CreatedAt, now),
		Icon:          icon,
		IconColor:     iconColor,
		BadgeVariant:  n.Type.BadgeVariant(),
		PriorityColor: n.Priority.Color(),
		CategoryLabel: n.Category.Label(),
	}
}
