package controller

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"edupanel/config"
	"edupanel/database/model"
	"edupanel/web/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterLoginLogoutFlow(t *testing.T) {
	srv, client, _ := newTestServer(t)

	// Register establishes a session as a side effect
	resp := postJSON(t, client, srv.URL+"/api/register", gin.H{
		"username": "alice",
		"password": "s3cret",
		"email":    "alice@example.com",
		"fullName": "Alice Adams",
		"role":     "staff",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	decodeBody(t, resp, &created)
	assert.Equal(t, "alice", created["username"])
	assert.Equal(t, "staff", created["role"])
	assert.NotContains(t, created, "password")
	assert.NotContains(t, created, "passwordHash")

	// The session from registration authenticates the current-user endpoint
	resp = getJSON(t, client, srv.URL+"/api/user")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var current model.SafeUser
	decodeBody(t, resp, &current)
	assert.Equal(t, "alice", current.Username)

	// Logout destroys the session
	resp = postJSON(t, client, srv.URL+"/api/logout", gin.H{})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = getJSON(t, client, srv.URL+"/api/user")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Logging back in works
	resp = postJSON(t, client, srv.URL+"/api/login", gin.H{
		"username": "alice",
		"password": "s3cret",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loggedIn model.SafeUser
	decodeBody(t, resp, &loggedIn)
	assert.Equal(t, "alice", loggedIn.Username)
}

func TestStaleSessionRejectedAfterLogout(t *testing.T) {
	srv, client, _ := newTestServer(t)

	registerUser(t, client, srv.URL, "alice", "staff")

	// Capture the session cookie before logging out
	u, _ := url.Parse(srv.URL)
	var stale *http.Cookie
	for _, c := range client.Jar.Cookies(u) {
		cookie := *c
		stale = &cookie
	}
	assert.NotNil(t, stale)

	resp := postJSON(t, client, srv.URL+"/api/logout", gin.H{})
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Replaying the old cookie must not authenticate: the server-side
	// session entry is gone
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/user", nil)
	req.AddCookie(stale)
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionExpiresAfterMaxAge(t *testing.T) {
	srv, client, _ := newTestServer(t)

	registerUser(t, client, srv.URL, "alice", "staff")

	resp := getJSON(t, client, srv.URL+"/api/user")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Expiry is lazy: nothing sweeps sessions, the server-side entry
	// simply outlives its TTL and the next access finds it gone
	mr := cache.GetMiniRedis()
	assert.NotNil(t, mr)
	mr.FastForward(time.Duration(config.GetSessionMaxAge())*time.Minute + time.Minute)

	resp = getJSON(t, client, srv.URL+"/api/user")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginFailures(t *testing.T) {
	srv, client, _ := newTestServer(t)

	registerUser(t, client, srv.URL, "alice", "staff")
	resp := postJSON(t, client, srv.URL+"/api/logout", gin.H{})
	resp.Body.Close()

	// Wrong password and unknown user get the same 401 body
	for _, form := range []gin.H{
		{"username": "alice", "password": "wrong"},
		{"username": "nobody", "password": "s3cret"},
	} {
		resp := postJSON(t, client, srv.URL+"/api/login", form)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "Authentication failed", body["message"])
	}
}

func TestRegisterValidation(t *testing.T) {
	srv, client, _ := newTestServer(t)

	// Unknown role
	resp := postJSON(t, client, srv.URL+"/api/register", gin.H{
		"username": "bob",
		"password": "pw",
		"email":    "bob@example.com",
		"fullName": "Bob",
		"role":     "superuser",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Missing email
	resp = postJSON(t, client, srv.URL+"/api/register", gin.H{
		"username": "bob",
		"password": "pw",
		"fullName": "Bob",
		"role":     "staff",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	srv, client, _ := newTestServer(t)

	registerUser(t, client, srv.URL, "alice", "staff")

	resp := postJSON(t, client, srv.URL+"/api/register", gin.H{
		"username": "alice",
		"password": "other",
		"email":    "other@example.com",
		"fullName": "Other Alice",
		"role":     "teacher",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Username already exists", body["message"])
}

func TestProtectedEndpointsRequireSession(t *testing.T) {
	srv, _, _ := newTestServer(t)

	// No cookie jar: every request is anonymous
	paths := []string{
		"/api/students",
		"/api/staff",
		"/api/teachers",
		"/api/admission-forms",
		"/api/activity-logs",
		"/api/dashboard/stats",
		"/api/server/logs",
		"/api/user",
	}
	for _, path := range paths {
		resp, err := http.Get(srv.URL + path)
		assert.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}
