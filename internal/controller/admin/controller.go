// Package admin provides the moderation endpoints reserved for admin users.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

// AdminController handles admin related endpoints
type AdminController struct {
	DB *database.DBinstanceStruct
}

// NewAdminController creates a new instance of AdminController
func NewAdminController(db *database.DBinstanceStruct) *AdminController {
	return &AdminController{
		DB: db,
	}
}

// Dashboard lists every registered user and every job request for moderation.
// @Summary Admin dashboard view model
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/dashboard [get]
func (ac *AdminController) Dashboard(c *gin.Context) {
	var users []model.User
	if err := ac.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		logging.Log.WithError(err).Error("failed to fetch users")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	var requests []model.JobRequest
	if err := ac.DB.Order("created_at DESC").Find(&requests).Error; err != nil {
		logging.Log.WithError(err).Error("failed to fetch job requests")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":    "Admin Dashboard",
		"users":    users,
		"requests": requests,
	})
}

// DeleteUser hard deletes one user account. Rows owned by the user in other
// tables are left in place.
// @Summary Delete one user by id
// @Tags Admin
// @Produce json
// @Param id path string true "User id"
// @Success 302 "Redirect to the admin dashboard"
// @Failure 400 {object} utilities.ErrorResponse "Invalid user id"
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/delete_user/{id} [post]
func (ac *AdminController) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid user id."})
		return
	}

	res := ac.DB.Delete(&model.User{}, "id = ?", userID)
	if res.Error != nil {
		logging.Log.WithError(res.Error).Error("failed to delete user")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to delete user."})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "User not found."})
		return
	}

	logging.Log.WithField("user_id", userID).Info("admin deleted user")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// DeleteRequest hard deletes one job request.
// @Summary Delete one job request by id
// @Tags Admin
// @Produce json
// @Param id path integer true "Request id"
// @Success 302 "Redirect to the admin dashboard"
// @Failure 404 {object} utilities.ErrorResponse "Request not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/delete_request/{id} [post]
func (ac *AdminController) DeleteRequest(c *gin.Context) {
	res := ac.DB.Delete(&model.JobRequest{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		logging.Log.WithError(res.Error).Error("failed to delete job request")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to delete job request."})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job request not found."})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}
