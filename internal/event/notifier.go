package event

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/deveshjagdale07/ConnectHire/internal/model"
)

// RegisterNotifications subscribes the in-app notification consumer to every
// event that fans out to a counterparty. Each consumer inserts exactly one
// Notification row inside the transaction of the triggering write.
func RegisterNotifications(d *Dispatcher) {
	d.Subscribe(RequestSent{}.Name(), notifyRequestSent)
	d.Subscribe(RequestAccepted{}.Name(), notifyRequestAnswered)
	d.Subscribe(RequestRejected{}.Name(), notifyRequestAnswered)
	d.Subscribe(ApplicationSubmitted{}.Name(), notifyApplicationSubmitted)
}

func notifyRequestSent(tx *gorm.DB, e Event) error {
	req := e.(RequestSent).Request

	var company model.CompanyProfile
	if err := tx.First(&company, "user_id = ?", req.CompanyID).Error; err != nil {
		return err
	}

	return tx.Create(&model.Notification{
		UserID:     req.JobSeekerID,
		Message:    fmt.Sprintf("%s sent you a job request for the role %s.", company.CompanyName, req.Role),
		RelatedURL: "/job_seeker/requests",
	}).Error
}

func notifyRequestAnswered(tx *gorm.DB, e Event) error {
	var req model.JobRequest
	var verb string
	switch ev := e.(type) {
	case RequestAccepted:
		req, verb = ev.Request, "accepted"
	case RequestRejected:
		req, verb = ev.Request, "rejected"
	default:
		return fmt.Errorf("unexpected event %s", e.Name())
	}

	var seeker model.JobSeekerProfile
	if err := tx.First(&seeker, "user_id = ?", req.JobSeekerID).Error; err != nil {
		return err
	}

	return tx.Create(&model.Notification{
		UserID:     req.CompanyID,
		Message:    fmt.Sprintf("%s %s your job request for the role %s.", seeker.Name, verb, req.Role),
		RelatedURL: "/company/sent_requests",
	}).Error
}

func notifyApplicationSubmitted(tx *gorm.DB, e Event) error {
	app := e.(ApplicationSubmitted).Application

	var listing model.JobListing
	if err := tx.First(&listing, "id = ?", app.JobID).Error; err != nil {
		return err
	}

	var seeker model.JobSeekerProfile
	if err := tx.First(&seeker, "user_id = ?", app.JobSeekerID).Error; err != nil {
		return err
	}

	return tx.Create(&model.Notification{
		UserID:     listing.CompanyID,
		Message:    fmt.Sprintf("%s applied to your %s listing.", seeker.Name, listing.Role),
		RelatedURL: fmt.Sprintf("/company/listings/%d/applicants", listing.ID),
	}).Error
}
