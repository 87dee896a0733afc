package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/deveshjagdale07/ConnectHire/internal/logging"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/upload"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

// UploadResume stores a resume for the calling seeker. Only PDF uploads are
// accepted; anything else is a validation failure.
// @Summary Upload resume file for a job seeker
// @Description Only .pdf uploads are permitted
// @Tags Profile
// @Accept mpfd
// @Produce json
// @Success 302 "Redirect to the seeker dashboard"
// @Failure 400 {object} utilities.ErrorResponse "Missing file or unsupported file type"
// @Failure 404 {object} utilities.ErrorResponse "Profile not created yet"
// @Failure 500 {object} utilities.ErrorResponse "Database or filesystem error"
// @Router /job_seeker/upload_resume [post]
func (pc *ProfileController) UploadResume(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var profile model.JobSeekerProfile
	if err := pc.DB.First(&profile, "user_id = ?", principal.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Profile not found."})
			return
		}
		logging.Log.WithError(err).Error("failed to load seeker profile")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}

	file, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "A resume file must be provided."})
		return
	}

	if !upload.HasExtension(file, ".pdf") {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Only PDF resumes are accepted."})
		return
	}

	path, err := upload.Save(c, file, upload.ResumeDir, "resume")
	if err != nil {
		logging.Log.WithError(err).Error("failed to store resume")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to upload resume."})
		return
	}

	profile.ResumeURL = path
	if err := pc.DB.Save(&profile).Error; err != nil {
		logging.Log.WithError(err).Error("failed to update resume path")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to upload resume."})
		return
	}

	c.Redirect(http.StatusFound, "/job_seeker/dashboard")
}

// AddCertification stores one certificate (name plus file) for the caller.
// @Summary Add a certification with its certificate file
// @Tags Profile
// @Accept mpfd
// @Produce json
// @Success 302 "Redirect to the seeker dashboard"
// @Failure 400 {object} utilities.ErrorResponse "Missing name or file"
// @Failure 500 {object} utilities.ErrorResponse "Database or filesystem error"
// @Router /job_seeker/certifications [post]
func (pc *ProfileController) AddCertification(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "A certification name must be provided."})
		return
	}

	file, err := c.FormFile("certificate")
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "A certificate file must be provided."})
		return
	}

	path, err := upload.Save(c, file, upload.CertificateDir, "certificate")
	if err != nil {
		logging.Log.WithError(err).Error("failed to store certificate")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to upload certificate."})
		return
	}

	cert := model.Certification{
		UserID:  principal.UserID,
		Name:    name,
		FileURL: path,
	}
	if err := pc.DB.Create(&cert).Error; err != nil {
		logging.Log.WithError(err).Error("failed to create certification")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to add certification."})
		return
	}

	c.Redirect(http.StatusFound, "/job_seeker/dashboard")
}

// DeleteCertification removes one certification owned by the caller.
// @Summary Delete one certification by id
// @Tags Profile
// @Produce json
// @Param id path integer true "Certification id"
// @Success 302 "Redirect to the seeker dashboard"
// @Failure 404 {object} utilities.ErrorResponse "Certification not found or not owned"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /job_seeker/certifications/delete/{id} [post]
func (pc *ProfileController) DeleteCertification(c *gin.Context) {
	principal, err := utilities.ExtractPrincipal(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	res := pc.DB.Where("id = ? AND user_id = ?", c.Param("id"), principal.UserID).
		Delete(&model.Certification{})
	if res.Error != nil {
		logging.Log.WithError(res.Error).Error("failed to delete certification")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "An error occurred."})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Certification not found."})
		return
	}

	c.Redirect(http.StatusFound, "/job_seeker/dashboard")
}
