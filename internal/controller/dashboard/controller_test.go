package dashboard

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/middleware"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/session"
	"github.com/deveshjagdale07/ConnectHire/internal/testutil"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	teardown, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("Failed to set up test database: %v", err)
	}
	testDB = db

	code := m.Run()

	if err := teardown(context.Background()); err != nil {
		log.Printf("Failed to tear down test database: %v", err)
	}
	os.Exit(code)
}

func newTestRouter(store session.Store) *gin.Engine {
	r := gin.New()
	ctl := NewDashboardController(testDB)
	authed := r.Group("", middleware.RequireLogin(store))
	authed.GET("/job_seeker/dashboard", ctl.SeekerDashboard)
	authed.GET("/company/dashboard", ctl.CompanyDashboard)
	return r
}

func TestSeekerDashboardCounts(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)

	hashed, err := utilities.HashPassword("DashPass1!")
	assert.NoError(t, err)
	user := model.User{
		ID:       uuid.New(),
		Email:    "dash-seeker@example.com",
		Password: hashed,
		Role:     model.RoleJobSeeker,
	}
	assert.NoError(t, testDB.Create(&user).Error)
	assert.NoError(t, testDB.Create(&model.JobSeekerProfile{
		UserID: user.ID,
		EditableSeekerInfo: model.EditableSeekerInfo{
			Name:   "Dash Seeker",
			Role:   "Tester",
			Skills: "testing",
		},
	}).Error)

	assert.NoError(t, testDB.Create(&model.JobRequest{
		CompanyID:           database.TestUserCompany1.ID,
		JobSeekerID:         user.ID,
		EditableRequestInfo: model.EditableRequestInfo{Role: "Tester"},
		Status:              model.RequestStatusPending,
	}).Error)
	assert.NoError(t, testDB.Create(&model.Application{
		JobSeekerID: user.ID,
		JobID:       database.TestListing1.ID,
		Status:      model.ApplicationStatusPending,
	}).Error)
	assert.NoError(t, testDB.Create(&model.Notification{
		UserID:  user.ID,
		Message: "TechNova sent you a job request for the role Tester.",
	}).Error)

	cookie := testutil.NewSessionCookie(store, session.Session{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})

	rec := testutil.MakeGetRequest(cookie, r, "/job_seeker/dashboard")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["pending_requests"])
	assert.EqualValues(t, 1, body["pending_applications"])
	assert.EqualValues(t, 1, body["unread_notifications"])
	assert.EqualValues(t, 30, body["profile_completion"])
	assert.Equal(t, true, body["has_profile"])
}

func TestCompanyDashboardCounts(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)

	cookie := testutil.NewSessionCookie(store, session.Session{
		UserID: database.TestUserCompany2.ID,
		Email:  database.TestUserCompany2.Email,
		Role:   model.RoleCompany,
	})

	assert.NoError(t, testDB.Create(&model.Application{
		JobSeekerID: database.TestUserSeeker1.ID,
		JobID:       database.TestListing3.ID,
		Status:      model.ApplicationStatusPending,
	}).Error)

	rec := testutil.MakeGetRequest(cookie, r, "/company/dashboard")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["has_profile"])

	pending, ok := body["pending_applications"].(float64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, pending, float64(1))
}
