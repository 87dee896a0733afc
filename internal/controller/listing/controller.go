// Package listing provides HTTP handlers for job listings: company-side
// posting and applicant management, seeker-side browsing and applying.
package listing

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/event"
	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

// ListingController handles job listing related endpoints
type ListingController struct {
	DB     *database.DBinstanceStruct
	Events *event.Dispatcher
}

// NewListingController creates a new instance of ListingController
func NewListingController(db *database.DBinstanceStruct, events *event.Dispatcher) *ListingController {
	return &ListingController{
		DB:     db,
		Events: events,
	}
}

// CreateListing handles the creation of a new job listing by a company user.
// @Summary Create a job listing
// @Tags Listing
// @Accept x-www-form-urlencoded
// @Produce json
// @Param Listing formData model.EditableListingInfo true "Listing fields"
// @Success 302 "Redirect to the company listing overview"
// @Failure 400 {object} utilities.ErrorResponse "Invalid listing form"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/post_job [post]
func (lc *ListingController) CreateListing(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info model.EditableListingInfo
	if err := c.ShouldBind(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "A job role must be provided."})
		return
	}

	listing := model.JobListing{
		CompanyID:           principal.UserID,
		EditableListingInfo: info,
	}
	if err := lc.DB.Create(&listing).Error; err != nil {
		logging.Log.WithError(err).Error("failed to create job listing")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to post the job."})
		return
	}

	c.Redirect(http.StatusFound, "/company/my_listings")
}

// MyListings returns every listing posted by the calling company.
// @Summary List the caller's own job listings
// @Tags Listing
// @Produce json
// @Success 200 {array} model.JobListing
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/my_listings [get]
func (lc *ListingController) MyListings(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var listings []model.JobListing
	if err := lc.DB.Where("company_id = ?", principal.UserID).
		Order("created_at DESC").Find(&listings).Error; err != nil {
		logging.Log.WithError(err).Error("failed to fetch company listings")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred while fetching job listings."})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// Applicants lists the applications of one listing joined with the seeker
// profiles. A listing not owned by the caller answers 404 so the route does
// not leak which listing ids exist.
// @Summary List applicants of one owned listing
// @Tags Listing
// @Produce json
// @Param id path integer true "Listing id"
// @Success 200 {array} model.ApplicantRow
// @Failure 404 {object} utilities.ErrorResponse "Listing not found or not owned"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/listings/{id}/applicants [get]
func (lc *ListingController) Applicants(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var listing model.JobListing
	err = lc.DB.Where("id = ? AND company_id = ?", c.Param("id"), principal.UserID).
		First(&listing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job listing not found."})
		return
	}
	if err != nil {
		logging.Log.WithError(err).Error("failed to load job listing")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	var applicants []model.ApplicantRow
	err = lc.DB.Table("applications AS a").
		Select(`a.id AS application_id, a.status, a.created_at,
			jsp.user_id AS job_seeker_id, jsp.name, jsp.role, jsp.skills,
			jsp.location, jsp.resume_url, jsp.profile_picture`).
		Joins("JOIN job_seeker_profiles AS jsp ON a.job_seeker_id = jsp.user_id").
		Where("a.job_id = ?", listing.ID).
		Scan(&applicants).Error
	if err != nil {
		logging.Log.WithError(err).Error("failed to fetch applicants")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred while fetching applicants."})
		return
	}

	c.JSON(http.StatusOK, applicants)
}

// ScheduleInterview moves one application of an owned listing to
// interview_scheduled. Ownership is re-checked against the listing before
// the write.
// @Summary Schedule an interview for one application
// @Tags Listing
// @Produce json
// @Param id path integer true "Application id"
// @Success 302 "Redirect back to the applicant list"
// @Failure 404 {object} utilities.ErrorResponse "Application not found or listing not owned"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/applications/{id}/schedule_interview [post]
func (lc *ListingController) ScheduleInterview(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var application model.Application
	err = lc.DB.Joins("JOIN job_listings ON job_listings.id = applications.job_id").
		Where("applications.id = ? AND job_listings.company_id = ?", c.Param("id"), principal.UserID).
		First(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found."})
		return
	}
	if err != nil {
		logging.Log.WithError(err).Error("failed to load application")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	err = lc.DB.Model(&application).
		Update("status", model.ApplicationStatusInterviewScheduled).Error
	if err != nil {
		logging.Log.WithError(err).Error("failed to update application status")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/company/listings/%d/applicants", application.JobID))
}

// BrowseListings returns all listings for the seeker-side browser. Optional
// filters combine with AND; an absent filter adds no constraint. Each row is
// left-joined against the caller's own applications so already-applied
// listings carry their application id.
// @Summary Browse job listings with optional filters
// @Tags Listing
// @Produce json
// @Param role query string false "Role substring match, case insensitive"
// @Param job_type query string false "Job type, exact match"
// @Param location query string false "Location, exact match"
// @Success 200 {array} model.BrowseListingRow
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job_seeker/browse_jobs [get]
func (lc *ListingController) BrowseListings(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	rawRole := c.Query("role")
	rawJobType := c.Query("job_type")
	rawLocation := c.Query("location")

	query := lc.DB.Table("job_listings AS jl").
		Select(`jl.id, jl.role, jl.compensation, jl.job_type, jl.duration,
			jl.location, jl.description, jl.created_at,
			cp.company_name, cp.company_logo, a.id AS application_id`).
		Joins("JOIN company_profiles AS cp ON jl.company_id = cp.user_id").
		Joins("LEFT JOIN applications AS a ON jl.id = a.job_id AND a.job_seeker_id = ?", principal.UserID)

	if rawRole != "" {
		query = query.Where("jl.role ILIKE ?", "%"+rawRole+"%")
	}
	if rawJobType != "" {
		query = query.Where("jl.job_type = ?", rawJobType)
	}
	if rawLocation != "" {
		query = query.Where("jl.location = ?", rawLocation)
	}

	var rows []model.BrowseListingRow
	if err := query.Order("jl.created_at DESC").Scan(&rows).Error; err != nil {
		logging.Log.WithError(err).Error("failed to fetch job listings")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred while fetching job listings."})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Apply inserts an application for one listing and notifies the posting
// company in the same transaction. Applying twice to the same listing is not
// prevented here.
// @Summary Apply to a job listing
// @Tags Listing
// @Produce json
// @Param id path integer true "Listing id"
// @Success 302 "Redirect to the listing browser"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job_seeker/apply_job/{id} [post]
func (lc *ListingController) Apply(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var listing model.JobListing
	if err := lc.DB.First(&listing, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job listing not found."})
			return
		}
		logging.Log.WithError(err).Error("failed to load job listing")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	application := model.Application{
		JobSeekerID: principal.UserID,
		JobID:       listing.ID,
		Status:      model.ApplicationStatusPending,
	}
	err = lc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&application).Error; err != nil {
			return err
		}
		return lc.Events.Dispatch(tx, event.ApplicationSubmitted{Application: application})
	})
	if err != nil {
		logging.Log.WithError(err).Error("failed to apply for job")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to apply for the job."})
		return
	}

	c.Redirect(http.StatusFound, "/job_seeker/browse_jobs")
}

// MyApplications lists the caller's applications joined with listing and
// company display data.
// @Summary List the caller's submitted applications
// @Tags Listing
// @Produce json
// @Success 200 {array} model.MyApplicationRow
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job_seeker/my_applications [get]
func (lc *ListingController) MyApplications(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var rows []model.MyApplicationRow
	err = lc.DB.Table("applications AS a").
		Select(`a.status, a.created_at,
			jl.role AS job_role, jl.location AS job_location, jl.compensation AS job_compensation,
			cp.company_name, cp.company_logo`).
		Joins("JOIN job_listings AS jl ON a.job_id = jl.id").
		Joins("JOIN company_profiles AS cp ON jl.company_id = cp.user_id").
		Where("a.job_seeker_id = ?", principal.UserID).
		Scan(&rows).Error
	if err != nil {
		logging.Log.WithError(err).Error("failed to fetch applications")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred while fetching your applications."})
		return
	}

	c.JSON(http.StatusOK, rows)
}
