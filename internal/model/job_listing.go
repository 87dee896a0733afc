package model

import (
	"time"

	"github.com/google/uuid"
)

// EditableListingInfo holds the listing fields a company submits when
// posting a job. Listings are never edited after creation.
type EditableListingInfo struct {
	Role         string `form:"role" json:"role" binding:"required"`
	Compensation string `form:"compensation" json:"compensation"`
	JobType      string `form:"job_type" json:"job_type"`
	Duration     string `form:"duration" json:"duration"`
	Location     string `form:"location" json:"location"`
	Description  string `form:"description" json:"description"`
}

// JobListing is a company-posted job opening.
type JobListing struct {
	ID        uint           `gorm:"primaryKey;autoIncrement;->" json:"id"`
	CompanyID uuid.UUID      `gorm:"type:uuid;not null;index;<-:create" json:"company_id"`
	Company   CompanyProfile `gorm:"foreignKey:CompanyID;references:UserID" json:"-"`

	EditableListingInfo `gorm:"embedded"`

	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`

	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}
