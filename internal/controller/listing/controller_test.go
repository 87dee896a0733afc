package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/event"
	"github.com/deveshjagdale07/ConnectHire/internal/middleware"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/session"
	"github.com/deveshjagdale07/ConnectHire/internal/testutil"
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
	events := event.NewDispatcher()
	event.RegisterNotifications(events)

	r := gin.New()
	ctl := NewListingController(testDB, events)
	authed := r.Group("", middleware.RequireLogin(store))
	authed.POST("/company/post_job", ctl.CreateListing)
	authed.GET("/company/my_listings", ctl.MyListings)
	authed.GET("/company/listings/:id/applicants", ctl.Applicants)
	authed.POST("/company/applications/:id/schedule_interview", ctl.ScheduleInterview)
	authed.GET("/job_seeker/browse_jobs", ctl.BrowseListings)
	authed.POST("/job_seeker/apply_job/:id", ctl.Apply)
	authed.GET("/job_seeker/my_applications", ctl.MyApplications)
	return r
}

func cookieFor(store session.Store, user model.User) *http.Cookie {
	return testutil.NewSessionCookie(store, session.Session{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
}

func browse(t *testing.T, r *gin.Engine, cookie *http.Cookie, query string) []model.BrowseListingRow {
	t.Helper()
	rec := testutil.MakeGetRequest(cookie, r, "/job_seeker/browse_jobs"+query)
	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []model.BrowseListingRow
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	return rows
}

func TestBrowseListingsFilters(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)
	seekerCookie := cookieFor(store, database.TestUserSeeker1)

	all := browse(t, r, seekerCookie, "")
	assert.GreaterOrEqual(t, len(all), 3, "unfiltered browse returns every listing")

	internships := browse(t, r, seekerCookie, "?job_type=internship")
	assert.NotEmpty(t, internships)
	for _, row := range internships {
		assert.Equal(t, "internship", row.JobType)
	}

	// role filters by case-insensitive substring
	backend := browse(t, r, seekerCookie, "?role=back")
	assert.NotEmpty(t, backend)
	for _, row := range backend {
		assert.Contains(t, row.Role, "Back")
	}

	puneInternships := browse(t, r, seekerCookie, "?job_type=internship&location=Pune")
	assert.NotEmpty(t, puneInternships)
	for _, row := range puneInternships {
		assert.Equal(t, "internship", row.JobType)
		assert.Equal(t, "Pune", row.Location)
	}

	none := browse(t, r, seekerCookie, "?role=zeppelin-pilot")
	assert.Empty(t, none)
}

func TestApplyTwiceInsertsTwoRows(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)
	seekerCookie := cookieFor(store, database.TestUserSeeker2)

	target := fmt.Sprintf("/job_seeker/apply_job/%d", database.TestListing2.ID)
	for i := 0; i < 2; i++ {
		rec, _ := testutil.MakeFormRequest(url.Values{}, seekerCookie, r, target)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/job_seeker/browse_jobs", rec.Header().Get("Location"))
	}

	var count int64
	assert.NoError(t, testDB.Model(&model.Application{}).
		Where("job_seeker_id = ? AND job_id = ?", database.TestUserSeeker2.ID, database.TestListing2.ID).
		Count(&count).Error)
	assert.EqualValues(t, 2, count, "nothing deduplicates repeat applications")

	// both applications notified the listing owner
	var notifCount int64
	assert.NoError(t, testDB.Model(&model.Notification{}).
		Where("user_id = ? AND message LIKE ?", database.TestUserCompany1.ID, "%"+database.TestSeeker2.Name+"%").
		Count(&notifCount).Error)
	assert.EqualValues(t, 2, notifCount)
}

func TestApplyMarksBrowseRow(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)
	seekerCookie := cookieFor(store, database.TestUserSeeker1)

	rec, _ := testutil.MakeFormRequest(url.Values{}, seekerCookie, r,
		fmt.Sprintf("/job_seeker/apply_job/%d", database.TestListing3.ID))
	assert.Equal(t, http.StatusFound, rec.Code)

	rows := browse(t, r, seekerCookie, "")
	found := false
	for _, row := range rows {
		if row.ID == database.TestListing3.ID {
			found = true
			assert.NotNil(t, row.ApplicationID, "applied listing carries the application id")
		}
	}
	assert.True(t, found)
}

func TestApplyUnknownListing(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)
	seekerCookie := cookieFor(store, database.TestUserSeeker1)

	rec, _ := testutil.MakeFormRequest(url.Values{}, seekerCookie, r, "/job_seeker/apply_job/999999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateListingAndMyListings(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)
	companyCookie := cookieFor(store, database.TestUserCompany2)

	rec, _ := testutil.MakeFormRequest(url.Values{
		"role":         {"Site Reliability Engineer"},
		"compensation": {"2000000 INR"},
		"job_type":     {"full_time"},
		"duration":     {"permanent"},
		"location":     {"Bengaluru"},
		"description":  {"Keep the lights on."},
	}, companyCookie, r, "/company/post_job")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/company/my_listings", rec.Header().Get("Location"))

	listRec := testutil.MakeGetRequest(companyCookie, r, "/company/my_listings")
	assert.Equal(t, http.StatusOK, listRec.Code)

	var listings []model.JobListing
	assert.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &listings))
	roles := make([]string, 0, len(listings))
	for _, l := range listings {
		assert.Equal(t, database.TestUserCompany2.ID, l.CompanyID)
		roles = append(roles, l.Role)
	}
	assert.Contains(t, roles, "Site Reliability Engineer")
}

func TestCreateListingRequiresRole(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)
	companyCookie := cookieFor(store, database.TestUserCompany1)

	rec, _ := testutil.MakeFormRequest(url.Values{
		"location": {"Remote"},
	}, companyCookie, r, "/company/post_job")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplicantsOwnershipScoped(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)

	// an applicant so the owner's list is non-empty
	app := model.Application{
		JobSeekerID: database.TestUserSeeker1.ID,
		JobID:       database.TestListing1.ID,
		Status:      model.ApplicationStatusPending,
	}
	assert.NoError(t, testDB.Create(&app).Error)

	ownerCookie := cookieFor(store, database.TestUserCompany1)
	rec := testutil.MakeGetRequest(ownerCookie, r,
		fmt.Sprintf("/company/listings/%d/applicants", database.TestListing1.ID))
	assert.Equal(t, http.StatusOK, rec.Code)

	var applicants []model.ApplicantRow
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &applicants))
	assert.NotEmpty(t, applicants)

	otherCookie := cookieFor(store, database.TestUserCompany2)
	rec = testutil.MakeGetRequest(otherCookie, r,
		fmt.Sprintf("/company/listings/%d/applicants", database.TestListing1.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code,
		"a listing owned by someone else must look like it does not exist")
}

func TestScheduleInterview(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)

	app := model.Application{
		JobSeekerID: database.TestUserSeeker2.ID,
		JobID:       database.TestListing1.ID,
		Status:      model.ApplicationStatusPending,
	}
	assert.NoError(t, testDB.Create(&app).Error)

	// not the listing owner
	otherCookie := cookieFor(store, database.TestUserCompany2)
	rec, _ := testutil.MakeFormRequest(url.Values{}, otherCookie, r,
		fmt.Sprintf("/company/applications/%d/schedule_interview", app.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	ownerCookie := cookieFor(store, database.TestUserCompany1)
	rec, _ = testutil.MakeFormRequest(url.Values{}, ownerCookie, r,
		fmt.Sprintf("/company/applications/%d/schedule_interview", app.ID))
	assert.Equal(t, http.StatusFound, rec.Code)

	var updated model.Application
	assert.NoError(t, testDB.First(&updated, app.ID).Error)
	assert.Equal(t, model.ApplicationStatusInterviewScheduled, updated.Status)
}
