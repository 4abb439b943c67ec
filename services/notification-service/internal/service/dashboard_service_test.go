package service

import (
	"context"
	"testing"
	"time"

	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/model"

	"go.uber.org/zap"
)

func setupTestDashboardService(t *testing.T) (*DashboardService, *NotificationService) {
	t.Helper()
	notificationSvc, _ := setupTestNotificationService(t, zap.NewNop())
	dashboard := NewDashboardService(notificationSvc, 4, zap.NewNop())
	dashboard.now = func() time.Time { return fixedNow }
	return dashboard, notificationSvc
}

func TestDashboardService_GetPanel(t *testing.T) {
	dashboard, _ := setupTestDashboardService(t)

	panel := dashboard.GetPanel(context.Background(), 0)
	if len(panel.Notifications) != 4 {
		t.Fatalf("expected 4 recent notifications, got %d", len(panel.Notifications))
	}
	if panel.UnreadCount != 3 || panel.UrgentUnreadCount != 1 {
		t.Errorf("unexpected counts %+v", panel)
	}
	if panel.HeaderBadgeVariant != model.BadgeDestructive {
		t.Errorf("badge = %q, want destructive", panel.HeaderBadgeVariant)
	}

	first := panel.Notifications[0]
	if first.ID != 1 || first.TimeAgo != "5 min ago" || first.Icon != "alert-triangle" || first.BadgeVariant != model.BadgeDestructive {
		t.Errorf("unexpected first view %+v", first)
	}
	if first.CategoryLabel != "Room" || first.PriorityColor == "" {
		t.Errorf("missing presentation attributes %+v", first)
	}

	if got := dashboard.GetPanel(context.Background(), 2); len(got.Notifications) != 2 {
		t.Errorf("explicit limit ignored: %d", len(got.Notifications))
	}
}

func TestDashboardService_SurfacesShareStore(t *testing.T) {
	dashboard, notificationSvc := setupTestDashboardService(t)
	ctx := context.Background()

	// acting from the header panel is visible on the page and vice versa
	notificationSvc.MarkAsRead(ctx, 1)
	page := dashboard.GetPage(ctx, model.NotificationQuery{Tab: model.TabUnread})
	for _, n := range page.Notifications {
		if n.ID == 1 {
			t.Error("notification 1 still unread on the page")
		}
	}

	notificationSvc.MarkAllAsRead(ctx)
	panel := dashboard.GetPanel(ctx, 0)
	if panel.UnreadCount != 0 || panel.HeaderBadgeVariant != "" {
		t.Errorf("panel not updated: %+v", panel)
	}
}

func TestDashboardService_GetPage(t *testing.T) {
	dashboard, _ := setupTestDashboardService(t)

	page := dashboard.GetPage(context.Background(), model.NotificationQuery{Type: model.TypeSuccess})
	if len(page.Notifications) != 3 {
		t.Fatalf("expected 3 success notifications, got %d", len(page.Notifications))
	}
	want := model.NotificationStats{Total: 8, Unread: 3, Urgent: 1, Archived: 1}
	if page.Stats != want {
		t.Errorf("stats = %+v, want %+v", page.Stats, want)
	}
	if last := page.Notifications[2]; last.ID != 8 || last.TimeAgo != "1 day ago" {
		t.Errorf("unexpected last view %+v", last)
	}

	empty := dashboard.GetPage(context.Background(), model.NotificationQuery{SearchTerm: "no such text"})
	if empty.Notifications == nil || len(empty.Notifications) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", empty.Notifications)
	}
}
