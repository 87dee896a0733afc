package model

import "github.com/google/uuid"

// EditableSeekerInfo holds every job seeker profile field a form submission
// may set. Embedded so create/update handlers can bind it directly.
type EditableSeekerInfo struct {
	Name            string `form:"name" json:"name"`
	Role            string `form:"role" json:"role"`
	Skills          string `form:"skills" json:"skills"`
	WorkPreferences string `form:"work_preferences" json:"work_preferences"`
	Certifications  string `form:"certifications" json:"certifications"`
	Projects        string `form:"projects" json:"projects"`
	Experience      string `form:"experience" json:"experience"`
	Location        string `form:"location" json:"location"`
	ResumeURL       string `form:"resume_url" json:"resume_url"`
}

// JobSeekerProfile is the 1:1 profile of a job_seeker user. Created on first
// profile submission and updated in place afterwards.
type JobSeekerProfile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID" json:"-"`

	EditableSeekerInfo `gorm:"embedded"`

	// Stored relative path under the developer pictures directory.
	ProfilePicture string `gorm:"type:text" json:"profile_picture"`

	Certificates []Certification `gorm:"foreignKey:UserID;references:UserID" json:"certificates,omitempty"`
}

// Certification is an independently managed certificate of one job seeker.
type Certification struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name    string    `gorm:"type:text" json:"name"`
	FileURL string    `gorm:"type:text" json:"file_url"`
}
