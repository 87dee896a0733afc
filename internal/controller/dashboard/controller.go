// Package dashboard provides the per-role landing page view models.
package dashboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

// DashboardController handles dashboard related endpoints
type DashboardController struct {
	DB *database.DBinstanceStruct
}

// NewDashboardController creates a new instance of DashboardController
func NewDashboardController(db *database.DBinstanceStruct) *DashboardController {
	return &DashboardController{
		DB: db,
	}
}

// SeekerDashboard aggregates the seeker's pending request count, pending
// application count, unread notification count and profile completion.
// @Summary Job seeker dashboard view model
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job_seeker/dashboard [get]
func (dc *DashboardController) SeekerDashboard(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var profile model.JobSeekerProfile
	hasProfile := true
	err = dc.DB.First(&profile, "user_id = ?", principal.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hasProfile = false
	} else if err != nil {
		logging.Log.WithError(err).Error("failed to load seeker profile")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	var pendingRequests, pendingApplications, unread int64
	err = dc.DB.Model(&model.JobRequest{}).
		Where("job_seeker_id = ? AND status = ?", principal.UserID, model.RequestStatusPending).
		Count(&pendingRequests).Error
	if err == nil {
		err = dc.DB.Model(&model.Application{}).
			Where("job_seeker_id = ? AND status = ?", principal.UserID, model.ApplicationStatusPending).
			Count(&pendingApplications).Error
	}
	if err == nil {
		err = dc.DB.Model(&model.Notification{}).
			Where("user_id = ? AND is_read = ?", principal.UserID, false).
			Count(&unread).Error
	}
	if err != nil {
		logging.Log.WithError(err).Error("failed to aggregate seeker dashboard")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":                "Dashboard",
		"has_profile":          hasProfile,
		"profile":              profile,
		"pending_requests":     pendingRequests,
		"pending_applications": pendingApplications,
		"unread_notifications": unread,
		"profile_completion":   utilities.ProfileCompletion(profile),
	})
}

// CompanyDashboard aggregates the company's pending applications on its own
// listings, its pending sent requests and its unread notification count.
// @Summary Company dashboard view model
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/dashboard [get]
func (dc *DashboardController) CompanyDashboard(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var profile model.CompanyProfile
	hasProfile := true
	err = dc.DB.First(&profile, "user_id = ?", principal.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hasProfile = false
	} else if err != nil {
		logging.Log.WithError(err).Error("failed to load company profile")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	var pendingApplications, pendingRequests, unread int64
	err = dc.DB.Table("applications AS a").
		Joins("JOIN job_listings AS jl ON a.job_id = jl.id").
		Where("jl.company_id = ? AND a.status = ?", principal.UserID, model.ApplicationStatusPending).
		Count(&pendingApplications).Error
	if err == nil {
		err = dc.DB.Model(&model.JobRequest{}).
			Where("company_id = ? AND status = ?", principal.UserID, model.RequestStatusPending).
			Count(&pendingRequests).Error
	}
	if err == nil {
		err = dc.DB.Model(&model.Notification{}).
			Where("user_id = ? AND is_read = ?", principal.UserID, false).
			Count(&unread).Error
	}
	if err != nil {
		logging.Log.WithError(err).Error("failed to aggregate company dashboard")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":                "Company Dashboard",
		"has_profile":          hasProfile,
		"profile":              profile,
		"pending_applications": pendingApplications,
		"pending_requests":     pendingRequests,
		"unread_notifications": unread,
	})
}
