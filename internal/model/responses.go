package model

import (
	"time"

	"github.com/google/uuid"
)

// BrowseListingRow is one row of the seeker-side listing browser: the listing
// joined with the posting company and, when present, the id of the seeker's
// own application to it.
type BrowseListingRow struct {
	ID            uint      `json:"id"`
	Role          string    `json:"role"`
	Compensation  string    `json:"compensation"`
	JobType       string    `json:"job_type"`
	Duration      string    `json:"duration"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	CompanyName   string    `json:"company_name"`
	CompanyLogo   string    `json:"company_logo"`
	ApplicationID *uint     `json:"application_id"`
}

// SeekerRequestRow is one job request as shown to the targeted seeker.
type SeekerRequestRow struct {
	ID           uint   `json:"id"`
	Role         string `json:"role"`
	Compensation string `json:"compensation"`
	Duration     string `json:"duration"`
	JobType      string `json:"job_type"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	CompanyName  string `json:"company_name"`
	CompanyLogo  string `json:"company_logo"`
}

// CompanyRequestRow is one sent job request as shown to the issuing company.
type CompanyRequestRow struct {
	ID             uint   `json:"id"`
	Role           string `json:"role"`
	Compensation   string `json:"compensation"`
	Duration       string `json:"duration"`
	JobType        string `json:"job_type"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

// MyApplicationRow is one submitted application as shown to its seeker.
type MyApplicationRow struct {
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	JobRole         string    `json:"job_role"`
	JobLocation     string    `json:"job_location"`
	JobCompensation string    `json:"job_compensation"`
	CompanyName     string    `json:"company_name"`
	CompanyLogo     string    `json:"company_logo"`
}

// ApplicantRow is one applicant of a listing as shown to the owning company.
type ApplicantRow struct {
	ApplicationID  uint      `json:"application_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	JobSeekerID    uuid.UUID `json:"job_seeker_id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Skills         string    `json:"skills"`
	Location       string    `json:"location"`
	ResumeURL      string    `json:"resume_url"`
	ProfilePicture string    `json:"profile_picture"`
}

// ConversationRow is one entry of the conversation list with the partner's
// display identity resolved.
type ConversationRow struct {
	ID             uint      `json:"id"`
	LastUpdated    time.Time `json:"last_updated"`
	PartnerID      uuid.UUID `json:"partner_id"`
	PartnerName    string    `json:"partner_name"`
	PartnerPicture string    `json:"partner_picture"`
}

// DeveloperCard is the public shape of a seeker profile on the JSON API and
// the company-side developer browser.
type DeveloperCard struct {
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Skills          string    `json:"skills"`
	WorkPreferences string    `json:"work_preferences,omitempty"`
	Location        string    `json:"location,omitempty"`
	ProfilePicture  string    `json:"profile_picture,omitempty"`
}
