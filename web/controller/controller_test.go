package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"

	"edupanel/logger"
	"edupanel/storage"
	"edupanel/storage/memory"
	"edupanel/web/cache"
	"edupanel/web/service"
	"edupanel/web/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(logging.ERROR)
	if err := cache.InitRedis(""); err != nil {
		panic(err)
	}
	code := m.Run()
	cache.Close()
	os.Exit(code)
}

// newTestServer wires the full API over a fresh in-memory store and an
// embedded-Redis session store, mirroring the production router without
// the gzip and request id middleware.
func newTestServer(t *testing.T) (*httptest.Server, *http.Client, storage.Store) {
	t.Helper()

	store := memory.NewStore()

	engine := gin.New()
	sessionStore := cache.NewRedisStore(cache.GetClient(), []byte("test-session-secret"))
	engine.Use(sessions.Sessions(session.SessionName, sessionStore))

	activityService := service.NewActivityLogService(store)
	userService := service.NewUserService(store, activityService)
	approvalService := service.NewApprovalService(store)

	api := engine.Group("/api")
	NewAuthController(api, userService)
	NewStudentController(api, service.NewStudentService(store, activityService))
	NewUsersController(api, userService)
	NewAdmissionController(api, service.NewAdmissionService(store, activityService))
	NewActivityController(api, activityService)
	NewDashboardController(api, service.NewDashboardService(store), service.NewServerService())
	NewRegistrationController(api, approvalService)
	NewAdminController(api, service.NewAdminAuthService(store, []byte("test-jwt-secret")), approvalService)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	client := &http.Client{Jar: jar}

	return srv, client, store
}

func postJSON(t *testing.T, client *http.Client, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func getJSON(t *testing.T, client *http.Client, url string) *http.Response {
	t.Helper()

	resp, err := client.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatal(err)
	}
}

// registerUser creates a panel account through the API; the client's cookie
// jar holds the resulting session.
func registerUser(t *testing.T, client *http.Client, baseURL, username, role string) {
	t.Helper()

	resp := postJSON(t, client, baseURL+"/api/register", gin.H{
		"username": username,
		"password": "s3cret",
		"email":    username + "@example.com",
		"fullName": "Test " + username,
		"role":     role,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: got status %d", username, resp.StatusCode)
	}
}
