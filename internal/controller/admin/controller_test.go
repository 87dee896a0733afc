package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
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
	ctl := NewAdminController(testDB)
	authed := r.Group("/admin",
		middleware.RequireLogin(store),
		middleware.CheckRole(model.RoleAdmin))
	authed.GET("/dashboard", ctl.Dashboard)
	authed.POST("/delete_user/:id", ctl.DeleteUser)
	authed.POST("/delete_request/:id", ctl.DeleteRequest)
	return r
}

func adminCookie(store session.Store) *http.Cookie {
	return testutil.NewSessionCookie(store, session.Session{
		UserID: database.TestAdminUser.ID,
		Email:  database.TestAdminUser.Email,
		Role:   model.RoleAdmin,
	})
}

func TestDashboardRequiresAdminRole(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)

	seekerCookie := testutil.NewSessionCookie(store, session.Session{
		UserID: database.TestUserSeeker1.ID,
		Email:  database.TestUserSeeker1.Email,
		Role:   model.RoleJobSeeker,
	})

	rec := testutil.MakeGetRequest(seekerCookie, r, "/admin/dashboard")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = testutil.MakeGetRequest(adminCookie(store), r, "/admin/dashboard")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteUserLeavesOrphans(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)

	hashed, err := utilities.HashPassword("DoomedPass1!")
	assert.NoError(t, err)
	doomed := model.User{
		ID:       uuid.New(),
		Email:    "doomed@example.com",
		Password: hashed,
		Role:     model.RoleJobSeeker,
	}
	assert.NoError(t, testDB.Create(&doomed).Error)

	profile := model.JobSeekerProfile{
		UserID: doomed.ID,
		EditableSeekerInfo: model.EditableSeekerInfo{
			Name: "Doomed Seeker",
		},
	}
	assert.NoError(t, testDB.Create(&profile).Error)

	rec, _ := testutil.MakeFormRequest(url.Values{}, adminCookie(store), r,
		"/admin/delete_user/"+doomed.ID.String())

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	var userCount int64
	assert.NoError(t, testDB.Model(&model.User{}).
		Where("id = ?", doomed.ID).Count(&userCount).Error)
	assert.EqualValues(t, 0, userCount)

	// the delete does not cascade: the profile row stays behind
	var profileCount int64
	assert.NoError(t, testDB.Model(&model.JobSeekerProfile{}).
		Where("user_id = ?", doomed.ID).Count(&profileCount).Error)
	assert.EqualValues(t, 1, profileCount)
}

func TestDeleteUserUnknownID(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)

	rec, _ := testutil.MakeFormRequest(url.Values{}, adminCookie(store), r,
		"/admin/delete_user/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeFormRequest(url.Values{}, adminCookie(store), r,
		"/admin/delete_user/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteRequest(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)

	request := model.JobRequest{
		CompanyID:   database.TestUserCompany1.ID,
		JobSeekerID: database.TestUserSeeker1.ID,
		EditableRequestInfo: model.EditableRequestInfo{
			Role: "Moderated Role",
		},
		Status: model.RequestStatusPending,
	}
	assert.NoError(t, testDB.Create(&request).Error)

	target := fmt.Sprintf("/admin/delete_request/%d", request.ID)
	rec, _ := testutil.MakeFormRequest(url.Values{}, adminCookie(store), r, target)
	assert.Equal(t, http.StatusFound, rec.Code)

	var count int64
	assert.NoError(t, testDB.Model(&model.JobRequest{}).
		Where("id = ?", request.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// deleting it again answers 404
	rec, _ = testutil.MakeFormRequest(url.Values{}, adminCookie(store), r, target)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
