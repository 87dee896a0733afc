package model

import "github.com/google/uuid"

// EditableCompanyInfo holds the company profile fields a form may set.
type EditableCompanyInfo struct {
	CompanyName     string `form:"company_name" json:"company_name"`
	FoundingDetails string `form:"founding_details" json:"founding_details"`
	About           string `form:"about" json:"about"`
}

// CompanyProfile is the 1:1 profile of a company user.
type CompanyProfile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID" json:"-"`

	EditableCompanyInfo `gorm:"embedded"`

	// Stored relative path under the company logos directory.
	CompanyLogo string `gorm:"type:text" json:"company_logo"`
}
