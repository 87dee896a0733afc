// Package testutil provides utility functions for testing HTTP handlers.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deveshjagdale07/ConnectHire/internal/session"
)

// NewSessionCookie stores sess under a fresh id and returns the cookie a
// logged-in browser would send.
func NewSessionCookie(store session.Store, sess session.Session) *http.Cookie {
	id := session.NewID()
	if err := store.Set(context.Background(), id, sess, session.TTL()); err != nil {
		panic(err)
	}
	return &http.Cookie{Name: session.CookieName, Value: id}
}

// MakeFormRequest is a helper function for making form POST requests in tests.
// A nil cookie sends the request unauthenticated.
func MakeFormRequest(form url.Values, cookie *http.Cookie, r *gin.Engine, endpoint string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req, _ := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// MakeJSONRequest is a helper function for making JSON requests in tests
func MakeJSONRequest(body gin.H, cookie *http.Cookie, r *gin.Engine, endpoint string, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequest(method, endpoint, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// MakeGetRequest is a helper function for plain GET requests in tests.
func MakeGetRequest(cookie *http.Cookie, r *gin.Engine, endpoint string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, endpoint, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

// StringPtr is a helper function to get a pointer to a string
func StringPtr(s string) *string {
	return &s
}
