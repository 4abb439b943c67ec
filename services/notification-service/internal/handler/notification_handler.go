package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/model"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/repository"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/service"
	"github.com/yourorg/hotel-dashboard/services/notification-service/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxPanelLimit = 50

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationService *service.NotificationService
	dashboardService    *service.DashboardService
	logger              *zap.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(
	notificationService *service.NotificationService,
	dashboardService *service.DashboardService,
	logger *zap.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		dashboardService:    dashboardService,
		logger:              logger,
	}
}

// RegisterRoutes mounts the notification routes on a router group
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.GetNotificationsPage)
		notifications.POST("", h.CreateNotification)
		notifications.GET("/panel", h.GetPanel)
		notifications.GET("/stats", h.GetStats)
		notifications.POST("/mark-all-read", h.MarkAllAsRead)
		notifications.POST("/archive-all-read", h.ArchiveAllRead)
		notifications.GET("/:id", h.GetNotification)
		notifications.DELETE("/:id", h.DeleteNotification)
		notifications.POST("/:id/read", h.MarkAsRead)
		notifications.POST("/:id/unread", h.MarkAsUnread)
		notifications.POST("/:id/archive", h.Archive)
	}
}

// GetNotificationsPage handles the filtered notifications list
// GET /api/v1/notifications?search=&category=&type=&tab=
func (h *NotificationHandler) GetNotificationsPage(c *gin.Context) {
	q, err := model.ParseNotificationQuery(
		c.Query("search"),
		c.DefaultQuery("category", model.FilterAll),
		c.DefaultQuery("type", model.FilterAll),
		c.DefaultQuery("tab", string(model.TabAll)),
	)
	if err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, h.dashboardService.GetPage(c.Request.Context(), q))
}

// GetPanel handles the header notification panel
// GET /api/v1/notifications/panel?limit=
func (h *NotificationHandler) GetPanel(c *gin.Context) {
	limit := utils.ParseLimit(c, "limit", h.dashboardService.RecentLimit(), maxPanelLimit)
	c.JSON(http.StatusOK, h.dashboardService.GetPanel(c.Request.Context(), limit))
}

// GetStats handles retrieving the notification counts
// GET /api/v1/notifications/stats
func (h *NotificationHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.notificationService.GetStats(c.Request.Context()))
}

// GetNotification handles retrieving a single notification
// GET /api/v1/notifications/{id}
func (h *NotificationHandler) GetNotification(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	notification, err := h.notificationService.GetNotification(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.SendErrorResponse(c, http.StatusNotFound, "Notification not found")
			return
		}
		h.logger.Error("Failed to get notification", zap.Error(err), zap.Int("id", id))
		utils.SendErrorResponse(c, http.StatusInternalServerError, "Failed to get notification")
		return
	}

	c.JSON(http.StatusOK, notification)
}

// CreateNotification handles creating a notification
// POST /api/v1/notifications
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req model.NotificationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	notification, err := h.notificationService.CreateNotification(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidNotification) {
			utils.SendErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to create notification", zap.Error(err))
		utils.SendErrorResponse(c, http.StatusInternalServerError, "Failed to create notification")
		return
	}

	c.JSON(http.StatusCreated, notification)
}

// MarkAsRead handles marking a notification as read
// POST /api/v1/notifications/{id}/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	if id, ok := parseID(c); ok {
		h.notificationService.MarkAsRead(c.Request.Context(), id)
		c.Status(http.StatusNoContent)
	}
}

// MarkAsUnread handles marking a notification as unread
// POST /api/v1/notifications/{id}/unread
func (h *NotificationHandler) MarkAsUnread(c *gin.Context) {
	if id, ok := parseID(c); ok {
		h.notificationService.MarkAsUnread(c.Request.Context(), id)
		c.Status(http.StatusNoContent)
	}
}

// Archive handles archiving a notification
// POST /api/v1/notifications/{id}/archive
func (h *NotificationHandler) Archive(c *gin.Context) {
	if id, ok := parseID(c); ok {
		h.notificationService.Archive(c.Request.Context(), id)
		c.Status(http.StatusNoContent)
	}
}

// DeleteNotification handles deleting a notification
// DELETE /api/v1/notifications/{id}
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if id, ok := parseID(c); ok {
		h.notificationService.Delete(c.Request.Context(), id)
		c.Status(http.StatusNoContent)
	}
}

// MarkAllAsRead handles marking all notifications as read
// POST /api/v1/notifications/mark-all-read
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	changed := h.notificationService.MarkAllAsRead(c.Request.Context())
	c.JSON(http.StatusOK, model.NotificationChangeResponse{Changed: changed})
}

// ArchiveAllRead handles archiving all read notifications
// POST /api/v1/notifications/archive-all-read
func (h *NotificationHandler) ArchiveAllRead(c *gin.Context) {
	changed := h.notificationService.ArchiveAllRead(c.Request.Context())
	c.JSON(http.StatusOK, model.NotificationChangeResponse{Changed: changed})
}

// parseID reads the :id path parameter, answering 400 when it is not an integer
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Invalid notification ID")
		return 0, false
	}
	return id, true
}
