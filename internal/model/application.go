package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// ApplicationStatusPending indicates that the application awaits company review
	ApplicationStatusPending = "pending"
	// ApplicationStatusInterviewScheduled indicates the company scheduled an interview
	ApplicationStatusInterviewScheduled = "interview_scheduled"
)

// Application is a job seeker's response to a listing. Nothing prevents the
// same seeker from applying to the same listing twice; tests pin that down.
type Application struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	JobSeekerID uuid.UUID        `gorm:"type:uuid;not null;index" json:"job_seeker_id"`
	Seeker      JobSeekerProfile `gorm:"foreignKey:JobSeekerID;references:UserID" json:"-"`

	JobID   uint       `gorm:"not null;index" json:"job_id"`
	Listing JobListing `gorm:"foreignKey:JobID;references:ID" json:"-"`

	Status    string    `gorm:"type:text;default:pending" json:"status"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
