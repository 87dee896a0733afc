package messaging

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
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
	r := gin.New()
	ctl := NewMessagingController(testDB)
	authed := r.Group("", middleware.RequireLogin(store))
	authed.GET("/messages", ctl.ListConversations)
	authed.GET("/messages/:partnerId", ctl.ViewConversation)
	authed.POST("/messages/:partnerId", ctl.SendMessage)
	return r
}

func cookieFor(store session.Store, user model.User) *http.Cookie {
	return testutil.NewSessionCookie(store, session.Session{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
}

func pairConversationCount(t *testing.T, a, b model.User) int64 {
	t.Helper()
	var count int64
	assert.NoError(t, testDB.Model(&model.Conversation{}).
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
			a.ID, b.ID, b.ID, a.ID).
		Count(&count).Error)
	return count
}

func TestViewConversationCreatesOnce(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)
	seekerCookie := cookieFor(store, database.TestUserSeeker1)
	companyCookie := cookieFor(store, database.TestUserCompany1)

	// first open from the seeker side creates the conversation
	rec := testutil.MakeGetRequest(seekerCookie, r, "/messages/"+database.TestUserCompany1.ID.String())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, pairConversationCount(t, database.TestUserSeeker1, database.TestUserCompany1))

	// reopening from either side reuses it regardless of pair order
	rec = testutil.MakeGetRequest(seekerCookie, r, "/messages/"+database.TestUserCompany1.ID.String())
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = testutil.MakeGetRequest(companyCookie, r, "/messages/"+database.TestUserSeeker1.ID.String())
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.EqualValues(t, 1, pairConversationCount(t, database.TestUserSeeker1, database.TestUserCompany1))
}

func TestSendMessageWithoutConversation(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)
	seekerCookie := cookieFor(store, database.TestUserSeeker2)

	rec, resp := testutil.MakeFormRequest(url.Values{
		"messageBody": {"hello?"},
	}, seekerCookie, r, "/messages/"+database.TestUserCompany2.ID.String())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Conversation not found.", resp["error"])
}

func TestSendMessageAppendsAndBumps(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)
	seekerCookie := cookieFor(store, database.TestUserSeeker2)

	// open the conversation first
	rec := testutil.MakeGetRequest(seekerCookie, r, "/messages/"+database.TestUserCompany1.ID.String())
	assert.Equal(t, http.StatusOK, rec.Code)

	var conversation model.Conversation
	assert.NoError(t, testDB.
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
			database.TestUserSeeker2.ID, database.TestUserCompany1.ID,
			database.TestUserCompany1.ID, database.TestUserSeeker2.ID).
		First(&conversation).Error)
	createdAt := conversation.LastUpdated

	postRec, _ := testutil.MakeFormRequest(url.Values{
		"messageBody": {"Hi, I saw your backend listing."},
	}, seekerCookie, r, "/messages/"+database.TestUserCompany1.ID.String())

	assert.Equal(t, http.StatusFound, postRec.Code)
	assert.Equal(t, "/messages/"+database.TestUserCompany1.ID.String(), postRec.Header().Get("Location"))

	var messages []model.Message
	assert.NoError(t, testDB.Where("conversation_id = ?", conversation.ID).
		Order("created_at ASC").Find(&messages).Error)
	if assert.Len(t, messages, 1) {
		assert.Equal(t, database.TestUserSeeker2.ID, messages[0].SenderID)
		assert.Equal(t, "Hi, I saw your backend listing.", messages[0].Body)
	}

	var bumped model.Conversation
	assert.NoError(t, testDB.First(&bumped, conversation.ID).Error)
	assert.False(t, bumped.LastUpdated.Before(createdAt))
}

func TestSendMessageRequiresBody(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)
	seekerCookie := cookieFor(store, database.TestUserSeeker1)

	rec, _ := testutil.MakeFormRequest(url.Values{}, seekerCookie, r,
		"/messages/"+database.TestUserCompany1.ID.String())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListConversationsResolvesPartner(t *testing.T) {
	store := session.NewMemoryStore()
	r := newTestRouter(store)
	seekerCookie := cookieFor(store, database.TestUserSeeker1)

	// ensure at least one conversation exists
	rec := testutil.MakeGetRequest(seekerCookie, r, "/messages/"+database.TestUserCompany1.ID.String())
	assert.Equal(t, http.StatusOK, rec.Code)

	listRec := testutil.MakeGetRequest(seekerCookie, r, "/messages")
	assert.Equal(t, http.StatusOK, listRec.Code)

	var rows []model.ConversationRow
	assert.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &rows))
	assert.NotEmpty(t, rows)

	found := false
	for _, row := range rows {
		if row.PartnerID == database.TestUserCompany1.ID {
			found = true
			assert.Equal(t, database.TestCompany1.CompanyName, row.PartnerName,
				"company partners resolve to their company name")
		}
	}
	assert.True(t, found)
}
