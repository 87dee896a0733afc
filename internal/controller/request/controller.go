// Package request provides HTTP handlers for company-initiated job requests.
package request

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/event"
	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

// RequestController handles job request related endpoints
type RequestController struct {
	DB     *database.DBinstanceStruct
	Events *event.Dispatcher
}

// NewRequestController creates a new instance of RequestController
func NewRequestController(db *database.DBinstanceStruct, events *event.Dispatcher) *RequestController {
	return &RequestController{
		DB:     db,
		Events: events,
	}
}

// SendRequest creates a directed job request from the calling company to one
// seeker and notifies that seeker in the same transaction.
// @Summary Send a job request to a job seeker
// @Tags Request
// @Accept x-www-form-urlencoded
// @Produce json
// @Param seekerId path string true "Target seeker user id"
// @Param Request formData model.EditableRequestInfo true "Proposal fields"
// @Success 302 "Redirect to the sent request overview"
// @Failure 400 {object} utilities.ErrorResponse "Invalid form or seeker id"
// @Failure 404 {object} utilities.ErrorResponse "Seeker not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/send_request/{seekerId} [post]
func (rc *RequestController) SendRequest(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	seekerID, err := uuid.Parse(c.Param("seekerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job seeker id."})
		return
	}

	var info model.EditableRequestInfo
	if err := c.ShouldBind(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "A job role must be provided."})
		return
	}

	var seeker model.JobSeekerProfile
	if err := rc.DB.First(&seeker, "user_id = ?", seekerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job seeker not found."})
			return
		}
		logging.Log.WithError(err).Error("failed to load seeker profile")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	request := model.JobRequest{
		CompanyID:           principal.UserID,
		JobSeekerID:         seekerID,
		EditableRequestInfo: info,
		Status:              model.RequestStatusPending,
	}
	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&request).Error; err != nil {
			return err
		}
		return rc.Events.Dispatch(tx, event.RequestSent{Request: request})
	})
	if err != nil {
		logging.Log.WithError(err).Error("failed to send job request")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to send the job request."})
		return
	}

	c.Redirect(http.StatusFound, "/company/sent_requests")
}

// SeekerRequests lists every request addressed to the calling seeker joined
// with the sending company's display data.
// @Summary List job requests addressed to the caller
// @Tags Request
// @Produce json
// @Success 200 {array} model.SeekerRequestRow
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job_seeker/requests [get]
func (rc *RequestController) SeekerRequests(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var rows []model.SeekerRequestRow
	err = rc.DB.Table("job_requests AS jr").
		Select(`jr.id, jr.role, jr.compensation, jr.duration, jr.job_type,
			jr.location, jr.status, cp.company_name, cp.company_logo`).
		Joins("JOIN company_profiles AS cp ON jr.company_id = cp.user_id").
		Where("jr.job_seeker_id = ?", principal.UserID).
		Scan(&rows).Error
	if err != nil {
		logging.Log.WithError(err).Error("failed to fetch job requests")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred while fetching your job requests."})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Accept transitions one request addressed to the caller to accepted.
// @Summary Accept a job request
// @Tags Request
// @Produce json
// @Param id path integer true "Request id"
// @Success 302 "Redirect to the request overview"
// @Failure 404 {object} utilities.ErrorResponse "Request not found or not addressed to the caller"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job_seeker/requests/{id}/accept [post]
func (rc *RequestController) Accept(c *gin.Context) {
	rc.answerRequest(c, model.RequestStatusAccepted)
}

// Reject transitions one request addressed to the caller to rejected.
// @Summary Reject a job request
// @Tags Request
// @Produce json
// @Param id path integer true "Request id"
// @Success 302 "Redirect to the request overview"
// @Failure 404 {object} utilities.ErrorResponse "Request not found or not addressed to the caller"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job_seeker/requests/{id}/reject [post]
func (rc *RequestController) Reject(c *gin.Context) {
	rc.answerRequest(c, model.RequestStatusRejected)
}

// answerRequest performs the seeker-side status transition. Scoping by
// job_seeker_id keeps one seeker from answering another seeker's request;
// the write and the company notification share one transaction.
func (rc *RequestController) answerRequest(c *gin.Context, status string) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var request model.JobRequest
	err = rc.DB.Where("id = ? AND job_seeker_id = ?", c.Param("id"), principal.UserID).
		First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job request not found."})
		return
	}
	if err != nil {
		logging.Log.WithError(err).Error("failed to load job request")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&request).Update("status", status).Error; err != nil {
			return err
		}
		if status == model.RequestStatusAccepted {
			return rc.Events.Dispatch(tx, event.RequestAccepted{Request: request})
		}
		return rc.Events.Dispatch(tx, event.RequestRejected{Request: request})
	})
	if err != nil {
		logging.Log.WithError(err).Error("failed to answer job request")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	c.Redirect(http.StatusFound, "/job_seeker/requests")
}

// SentRequests lists every request the calling company sent joined with the
// targeted seeker's display data.
// @Summary List job requests sent by the caller
// @Tags Request
// @Produce json
// @Success 200 {array} model.CompanyRequestRow
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /company/sent_requests [get]
func (rc *RequestController) SentRequests(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var rows []model.CompanyRequestRow
	err = rc.DB.Table("job_requests AS jr").
		Select(`jr.id, jr.role, jr.compensation, jr.duration, jr.job_type,
			jr.location, jr.status, jsp.name, jsp.profile_picture`).
		Joins("JOIN job_seeker_profiles AS jsp ON jr.job_seeker_id = jsp.user_id").
		Where("jr.company_id = ?", principal.UserID).
		Scan(&rows).Error
	if err != nil {
		logging.Log.WithError(err).Error("failed to fetch sent requests")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred while fetching your sent requests."})
		return
	}

	c.JSON(http.StatusOK, rows)
}
