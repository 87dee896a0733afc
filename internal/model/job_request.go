package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// RequestStatusPending indicates that the seeker has not answered yet
	RequestStatusPending = "pending"
	// RequestStatusAccepted indicates that the seeker accepted the proposal
	RequestStatusAccepted = "accepted"
	// RequestStatusRejected indicates that the seeker rejected the proposal
	RequestStatusRejected = "rejected"
)

// EditableRequestInfo holds the proposal fields a company submits when
// sending a job request to a seeker.
type EditableRequestInfo struct {
	Role         string `form:"role" json:"role" binding:"required"`
	Compensation string `form:"compensation" json:"compensation"`
	Duration     string `form:"duration" json:"duration"`
	JobType      string `form:"job_type" json:"job_type"`
	Location     string `form:"location" json:"location"`
}

// JobRequest is a company-initiated proposal targeted at one job seeker.
// Only the targeted seeker may change its status.
type JobRequest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CompanyID uuid.UUID      `gorm:"type:uuid;not null;index" json:"company_id"`
	Company   CompanyProfile `gorm:"foreignKey:CompanyID;references:UserID" json:"-"`

	JobSeekerID uuid.UUID        `gorm:"type:uuid;not null;index" json:"job_seeker_id"`
	Seeker      JobSeekerProfile `gorm:"foreignKey:JobSeekerID;references:UserID" json:"-"`

	EditableRequestInfo `gorm:"embedded"`

	Status    string    `gorm:"type:text;default:pending" json:"status"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
