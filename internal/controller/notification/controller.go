// Package notification provides HTTP handlers for the in-app notification feed.
package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

// NotificationController handles notification related endpoints
type NotificationController struct {
	DB *database.DBinstanceStruct
}

// NewNotificationController creates a new instance of NotificationController
func NewNotificationController(db *database.DBinstanceStruct) *NotificationController {
	return &NotificationController{
		DB: db,
	}
}

// List returns the caller's notifications, newest first.
// @Summary List the caller's notifications
// @Tags Notification
// @Produce json
// @Success 200 {array} model.Notification
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /notifications [get]
func (nc *NotificationController) List(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var notifications []model.Notification
	err = nc.DB.Where("user_id = ?", principal.UserID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		logging.Log.WithError(err).Error("failed to fetch notifications")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred while fetching notifications."})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkAsRead marks one notification owned by the caller as read. Scoping by
// user_id keeps one user from touching another user's feed.
// @Summary Mark one notification as read
// @Tags Notification
// @Produce json
// @Param id path integer true "Notification id"
// @Success 302 "Redirect back to the notification list"
// @Failure 404 {object} utilities.ErrorResponse "Notification not found or not owned"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /notifications/{id}/mark_as_read [post]
func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	res := nc.DB.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", c.Param("id"), principal.UserID).
		Update("is_read", true)
	if res.Error != nil {
		logging.Log.WithError(res.Error).Error("failed to mark notification as read")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Notification not found."})
		return
	}

	c.Redirect(http.StatusFound, "/notifications")
}
