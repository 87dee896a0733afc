// Package profile provides HTTP handlers for seeker and company profiles,
// their file uploads and seeker certifications.
package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/upload"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

// ProfileController handles profile related endpoints
type ProfileController struct {
	DB *database.DBinstanceStruct
}

// NewProfileController creates a new instance of ProfileController
func NewProfileController(db *database.DBinstanceStruct) *ProfileController {
	return &ProfileController{
		DB: db,
	}
}

// ShowSeekerProfileForm reports whether the caller already has a profile and
// returns it, so the client can render either the create or the update form.
// @Summary Seeker profile form view model
// @Tags Profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job_seeker/create_profile [get]
func (pc *ProfileController) ShowSeekerProfileForm(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var profile model.JobSeekerProfile
	err = pc.DB.Preload("Certificates").First(&profile, "user_id = ?", principal.UserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusOK, gin.H{"title": "Create Profile", "mode": "create"})
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"title": "Update Profile", "mode": "update", "profile": profile})
	default:
		logging.Log.WithError(err).Error("failed to load seeker profile")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
	}
}

// SaveSeekerProfile creates the seeker profile on first submission and
// updates it in place afterwards. When no new profile picture is supplied
// the previously stored path is preserved.
// @Summary Create or update the seeker profile
// @Tags Profile
// @Accept mpfd
// @Produce json
// @Success 302 "Redirect to the seeker dashboard"
// @Failure 500 {object} utilities.ErrorResponse "Database or filesystem error"
// @Router /job_seeker/create_profile [post]
func (pc *ProfileController) SaveSeekerProfile(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info model.EditableSeekerInfo
	if err := c.ShouldBind(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid profile form"})
		return
	}

	picturePath := ""
	if file, err := c.FormFile("profile_picture"); err == nil {
		picturePath, err = upload.Save(c, file, upload.DeveloperPictureDir, "developer")
		if err != nil {
			logging.Log.WithError(err).Error("failed to store profile picture")
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Profile creation failed."})
			return
		}
	}

	var existing model.JobSeekerProfile
	err = pc.DB.First(&existing, "user_id = ?", principal.UserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile := model.JobSeekerProfile{
			UserID:             principal.UserID,
			EditableSeekerInfo: info,
			ProfilePicture:     picturePath,
		}
		if err := pc.DB.Create(&profile).Error; err != nil {
			logging.Log.WithError(err).Error("failed to create seeker profile")
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Profile creation failed."})
			return
		}
	case err == nil:
		existing.EditableSeekerInfo = info
		if picturePath != "" {
			existing.ProfilePicture = picturePath
		}
		if err := pc.DB.Save(&existing).Error; err != nil {
			logging.Log.WithError(err).Error("failed to update seeker profile")
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Profile update failed."})
			return
		}
	default:
		logging.Log.WithError(err).Error("failed to load seeker profile")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	c.Redirect(http.StatusFound, "/job_seeker/dashboard")
}

// ShowCompanyProfileForm is the company counterpart of ShowSeekerProfileForm.
// @Summary Company profile form view model
// @Tags Profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/create_profile [get]
func (pc *ProfileController) ShowCompanyProfileForm(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var profile model.CompanyProfile
	err = pc.DB.First(&profile, "user_id = ?", principal.UserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusOK, gin.H{"title": "Create Company Profile", "mode": "create"})
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"title": "Update Company Profile", "mode": "update", "profile": profile})
	default:
		logging.Log.WithError(err).Error("failed to load company profile")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
	}
}

// SaveCompanyProfile creates or updates the company profile; an omitted logo
// keeps the previously stored file.
// @Summary Create or update the company profile
// @Tags Profile
// @Accept mpfd
// @Produce json
// @Success 302 "Redirect to the company dashboard"
// @Failure 500 {object} utilities.ErrorResponse "Database or filesystem error"
// @Router /company/create_profile [post]
func (pc *ProfileController) SaveCompanyProfile(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info model.EditableCompanyInfo
	if err := c.ShouldBind(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid profile form"})
		return
	}

	logoPath := ""
	if file, err := c.FormFile("company_logo"); err == nil {
		logoPath, err = upload.Save(c, file, upload.CompanyLogoDir, "company_logo")
		if err != nil {
			logging.Log.WithError(err).Error("failed to store company logo")
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Profile creation failed."})
			return
		}
	}

	var existing model.CompanyProfile
	err = pc.DB.First(&existing, "user_id = ?", principal.UserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile := model.CompanyProfile{
			UserID:              principal.UserID,
			EditableCompanyInfo: info,
			CompanyLogo:         logoPath,
		}
		if err := pc.DB.Create(&profile).Error; err != nil {
			logging.Log.WithError(err).Error("failed to create company profile")
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Profile creation failed."})
			return
		}
	case err == nil:
		existing.EditableCompanyInfo = info
		if logoPath != "" {
			existing.CompanyLogo = logoPath
		}
		if err := pc.DB.Save(&existing).Error; err != nil {
			logging.Log.WithError(err).Error("failed to update company profile")
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Profile update failed."})
			return
		}
	default:
		logging.Log.WithError(err).Error("failed to load company profile")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	c.Redirect(http.StatusFound, "/company/dashboard")
}

// BrowseDevelopers lists every seeker profile for the company-side browser.
// @Summary List all job seeker profiles
// @Tags Profile
// @Produce json
// @Success 200 {array} model.DeveloperCard
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/browse_developers [get]
func (pc *ProfileController) BrowseDevelopers(c *gin.Context) {
	var cards []model.DeveloperCard
	err := pc.DB.Model(&model.JobSeekerProfile{}).
		Select("user_id, name, role, skills, work_preferences, location, profile_picture").
		Scan(&cards).Error
	if err != nil {
		logging.Log.WithError(err).Error("failed to fetch developer profiles")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred while fetching profiles."})
		return
	}

	c.JSON(http.StatusOK, cards)
}
