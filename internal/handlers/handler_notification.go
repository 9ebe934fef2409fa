package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/gin-gonic/gin"
)

type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := &notificationHandler{notificationService: notificationService}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/viewed", h.markAllViewed)
		notifications.PUT("/:id/read", h.setRead)
	}
}

// listNotifications godoc
// @Summary List notifications, newest first
// @Tags notifications
// @Produce json
// @Success 200 {array} domain.Notification
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	notifications, err := h.notificationService.ListNotifications(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// markAllViewed godoc
// @Summary Mark every notification as viewed
// @Tags notifications
// @Success 204
// @Security BearerAuth
// @Router /notifications/viewed [post]
func (h *notificationHandler) markAllViewed(c *gin.Context) {
	if err := h.notificationService.MarkAllViewed(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to mark notifications viewed")
		return
	}
	c.Status(http.StatusNoContent)
}

// setRead godoc
// @Summary Mark a notification read or unread
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Param read body dto.SetReadRequest true "Read flag"
// @Success 200 {object} domain.Notification
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *notificationHandler) setRead(c *gin.Context) {
	var req dto.SetReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	n, err := h.notificationService.SetRead(c.Request.Context(), c.Param("id"), req.Read)
	if err != nil {
		respondError(c, err, "Failed to update notification")
		return
	}
	c.JSON(http.StatusOK, n)
}
