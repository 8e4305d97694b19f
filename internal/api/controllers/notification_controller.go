package controllers

import (
	"github.com/gin-gonic/gin"

	"anontherapy/internal/services"
	"anontherapy/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// GetMissed godoc
// @Summary List unread notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications [get]
func (n *NotificationController) GetMissed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notifications, err := n.notificationService.GetMissed(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, notifications, "Notifications retrieved")
}

// MarkAsRead godoc
// @Summary Mark one notification read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/{id}/read [put]
func (n *NotificationController) MarkAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	notificationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := n.notificationService.MarkAsRead(c.Request.Context(), userID, notificationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Notification marked as read")
}

// MarkAllAsRead godoc
// @Summary Mark every notification read
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/read-all [put]
func (n *NotificationController) MarkAllAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := n.notificationService.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "All notifications marked as read")
}

// DeleteAll godoc
// @Summary Delete every notification for the caller
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications [delete]
func (n *NotificationController) DeleteAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := n.notificationService.DeleteAll(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Notifications cleared")
}
