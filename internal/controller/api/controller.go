// Package api provides the unauthenticated read-only JSON endpoints.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

// APIController handles the public JSON API endpoints
type APIController struct {
	DB *database.DBinstanceStruct
}

// NewAPIController creates a new instance of APIController
func NewAPIController(db *database.DBinstanceStruct) *APIController {
	return &APIController{
		DB: db,
	}
}

type publicJobRow struct {
	ID           uint   `json:"id"`
	Role         string `json:"role"`
	Compensation string `json:"compensation"`
	JobType      string `json:"job_type"`
	Duration     string `json:"duration"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	CompanyName  string `json:"company_name"`
	CompanyLogo  string `json:"company_logo"`
}

// ListJobs returns every listing with the posting company's display data.
// @Summary List all job listings
// @Tags API
// @Produce json
// @Success 200 {array} api.publicJobRow
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /api/jobs [get]
func (ac *APIController) ListJobs(c *gin.Context) {
	var rows []publicJobRow
	err := ac.DB.Table("job_listings AS jl").
		Select(`jl.id, jl.role, jl.compensation, jl.job_type, jl.duration,
			jl.location, jl.description, cp.company_name, cp.company_logo`).
		Joins("JOIN company_profiles AS cp ON jl.company_id = cp.user_id").
		Order("jl.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		logging.Log.WithError(err).Error("failed to fetch public job listings")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetJob returns one listing by id.
// @Summary Get one job listing by id
// @Tags API
// @Produce json
// @Param id path integer true "Listing id"
// @Success 200 {object} api.publicJobRow
// @Failure 404 {object} utilities.ErrorResponse "Listing not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /api/jobs/{id} [get]
func (ac *APIController) GetJob(c *gin.Context) {
	var row publicJobRow
	err := ac.DB.Table("job_listings AS jl").
		Select(`jl.id, jl.role, jl.compensation, jl.job_type, jl.duration,
			jl.location, jl.description, cp.company_name, cp.company_logo`).
		Joins("JOIN company_profiles AS cp ON jl.company_id = cp.user_id").
		Where("jl.id = ?", c.Param("id")).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job listing not found."})
		return
	}
	if err != nil {
		logging.Log.WithError(err).Error("failed to fetch public job listing")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	c.JSON(http.StatusOK, row)
}

// ListDevelopers returns a card for every seeker profile.
// @Summary List all developer profiles
// @Tags API
// @Produce json
// @Success 200 {array} model.DeveloperCard
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /api/developers [get]
func (ac *APIController) ListDevelopers(c *gin.Context) {
	var cards []model.DeveloperCard
	err := ac.DB.Model(&model.JobSeekerProfile{}).
		Select("user_id, name, role, skills, work_preferences, location, profile_picture").
		Scan(&cards).Error
	if err != nil {
		logging.Log.WithError(err).Error("failed to fetch developer profiles")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	c.JSON(http.StatusOK, cards)
}

// GetDeveloper returns one full seeker profile including certifications.
// @Summary Get one developer profile by user id
// @Tags API
// @Produce json
// @Param id path string true "Seeker user id"
// @Success 200 {object} model.JobSeekerProfile
// @Failure 400 {object} utilities.ErrorResponse "Invalid user id"
// @Failure 404 {object} utilities.ErrorResponse "Profile not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /api/developers/{id} [get]
func (ac *APIController) GetDeveloper(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid user id."})
		return
	}

	var profile model.JobSeekerProfile
	err = ac.DB.Preload("Certificates").First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Developer not found."})
		return
	}
	if err != nil {
		logging.Log.WithError(err).Error("failed to fetch developer profile")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	c.JSON(http.StatusOK, profile)
}
