package utilities

import (
	"math"

	"github.com/deveshjagdale07/ConnectHire/internal/model"
)

// ProfileCompletion returns the percentage of the fixed seeker profile
// checklist holding a non-empty value, rounded to the nearest integer.
func ProfileCompletion(p model.JobSeekerProfile) int {
	fields := []string{
		p.Name,
		p.Role,
		p.Skills,
		p.WorkPreferences,
		p.Certifications,
		p.Projects,
		p.Experience,
		p.Location,
		p.ResumeURL,
		p.ProfilePicture,
	}

	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}

	return int(math.Round(float64(filled) / float64(len(fields)) * 100))
}
