package auth

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
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
	r := gin.New()
	ctl := NewAuthController(testDB, store)
	r.GET("/auth/register", ctl.ShowRegister)
	r.POST("/auth/register", ctl.Register)
	r.GET("/auth/login", ctl.ShowLogin)
	r.POST("/auth/login", ctl.Login)
	r.GET("/auth/logout", ctl.Logout)
	return r
}

func sessionCookieFrom(cookies []*http.Cookie) *http.Cookie {
	for _, c := range cookies {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestRegisterThenLogin(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)

	rec, _ := testutil.MakeFormRequest(url.Values{
		"email":    {"carol@example.com"},
		"password": {"CarolPass456!"},
		"role":     {model.RoleJobSeeker},
	}, nil, r, "/auth/register")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))

	var user model.User
	assert.NoError(t, testDB.First(&user, "email = ?", "carol@example.com").Error)
	assert.NotEqual(t, "CarolPass456!", user.Password, "password must be stored hashed")

	rec, _ = testutil.MakeFormRequest(url.Values{
		"email":    {"carol@example.com"},
		"password": {"CarolPass456!"},
	}, nil, r, "/auth/login")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/job_seeker/dashboard", rec.Header().Get("Location"))

	cookie := sessionCookieFrom(rec.Result().Cookies())
	if assert.NotNil(t, cookie, "login must set the session cookie") {
		sess, err := store.Get(context.Background(), cookie.Value)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, sess.UserID)
		assert.Equal(t, model.RoleJobSeeker, sess.Role)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	r := newTestRouter(session.NewMemoryStore())

	rec, _ := testutil.MakeFormRequest(url.Values{
		"email":    {"mallory@example.com"},
		"password": {"MalloryPass1!"},
		"role":     {model.RoleAdmin},
	}, nil, r, "/auth/register")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newTestRouter(session.NewMemoryStore())

	rec, resp := testutil.MakeFormRequest(url.Values{
		"email":    {database.TestUserSeeker1.Email},
		"password": {"AnotherPass1!"},
		"role":     {model.RoleJobSeeker},
	}, nil, r, "/auth/register")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Registration failed. Please try again.", resp["error"])
}

func TestLoginUniformUnauthorizedBody(t *testing.T) {
	r := newTestRouter(session.NewMemoryStore())

	recUnknown, respUnknown := testutil.MakeFormRequest(url.Values{
		"email":    {"nobody@example.com"},
		"password": {"whatever"},
	}, nil, r, "/auth/login")

	recWrongPwd, respWrongPwd := testutil.MakeFormRequest(url.Values{
		"email":    {database.TestUserSeeker1.Email},
		"password": {"not-the-password"},
	}, nil, r, "/auth/login")

	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, recWrongPwd.Code)
	assert.Equal(t, respUnknown, respWrongPwd,
		"unknown email and wrong password must be indistinguishable")
}

func TestLoginDispatchesByRole(t *testing.T) {
	r := newTestRouter(session.NewMemoryStore())

	cases := []struct {
		email    string
		location string
	}{
		{database.TestUserCompany1.Email, "/company/dashboard"},
		{database.TestAdminUser.Email, "/admin/dashboard"},
	}

	for _, tc := range cases {
		rec, _ := testutil.MakeFormRequest(url.Values{
			"email":    {tc.email},
			"password": {database.TestSeedPassword},
		}, nil, r, "/auth/login")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, tc.location, rec.Header().Get("Location"))
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)

	cookie := testutil.NewSessionCookie(store, session.Session{
		UserID: database.TestUserSeeker1.ID,
		Email:  database.TestUserSeeker1.Email,
		Role:   model.RoleJobSeeker,
	})

	rec := testutil.MakeGetRequest(cookie, r, "/auth/logout")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))

	_, err := store.Get(context.Background(), cookie.Value)
	assert.ErrorIs(t, err, session.ErrNotFound)
}
