// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	// RoleJobSeeker marks a user that builds a profile and applies to listings
	RoleJobSeeker = "job_seeker"
	// RoleCompany marks a user that posts listings and sends job requests
	RoleCompany = "company"
	// RoleAdmin marks the administrative user
	RoleAdmin = "admin"
)

// User is the account row shared by every role. The role is fixed at
// registration, there is no path that changes it afterwards.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Email     string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
