package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"sahyogjeevan/database"
	"sahyogjeevan/internal/config"
	"sahyogjeevan/internal/models"
	"sahyogjeevan/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	store := session.NewMemoryStore(0)
	t.Cleanup(store.Close)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Session.TTLHours = 1
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/uploads"
	cfg.Upload.MaxSize = 1 << 20

	return SetupRouter(cfg, db, store), db
}

// doJSON fires a JSON request, authenticating with token when non-empty.
func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func registerEmployer(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(router, "POST", "/api/register", "", gin.H{
		"role":     "employer",
		"username": username,
		"password": "super_password123",
		"email":    username + "@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func loginWorker(t *testing.T, router *gin.Engine, db *gorm.DB, phone string) string {
	t.Helper()
	w := doJSON(router, "POST", "/api/auth/send-otp", "", gin.H{"phone": phone})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	// The SMS provider only logs in tests, so read the stored code back.
	var user models.User
	require.NoError(t, db.Where("phone = ?", phone).First(&user).Error)
	require.NotNil(t, user.OTP)

	w = doJSON(router, "POST", "/api/auth/verify-otp", "", gin.H{"phone": phone, "otp": *user.OTP})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createJob posts a multipart job form and returns the new job's ID.
func createJob(t *testing.T, router *gin.Engine, token, title string) uint {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"title":        title,
		"description":  "Residential wiring work",
		"location":     "Mumbai",
		"salary":       "18000/month",
		"type":         "full-time",
		"requirements": `["ITI certificate"]`,
		"benefits":     `["Accommodation"]`,
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("companyLogo", "logo.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/jobs", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	id, ok := decode(t, w)["id"].(float64)
	require.True(t, ok)
	return uint(id)
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, "GET", "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestEmployerJobLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerEmployer(t, router, "acme")

	jobID := createJob(t, router, token, "Electrician")

	// Public listing shows the open job without authentication.
	w := doJSON(router, "GET", "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Electrician")

	// The stored logo is served from the static uploads mount.
	var jobs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	logoURL, _ := jobs[0]["companyLogo"].(string)
	require.NotEmpty(t, logoURL)
	w = doJSON(router, "GET", logoURL, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())

	// Closing removes the job from the public list but not from GET by ID.
	w = doJSON(router, "PUT", fmt.Sprintf("/api/jobs/%d/close", jobID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	w = doJSON(router, "GET", "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Electrician")

	w = doJSON(router, "GET", fmt.Sprintf("/api/jobs/%d", jobID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "closed")

	// The employer dashboard still lists it.
	w = doJSON(router, "GET", "/api/employer/jobs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Electrician")
}

func TestLoginAndLogout(t *testing.T) {
	router, _ := newTestRouter(t)
	registerEmployer(t, router, "acme")

	w := doJSON(router, "POST", "/api/login", "", gin.H{"username": "acme", "password": "super_password123"})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)

	w = doJSON(router, "GET", "/api/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "acme")

	w = doJSON(router, "POST", "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)
	registerEmployer(t, router, "acme")

	w := doJSON(router, "POST", "/api/login", "", gin.H{"username": "acme", "password": "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "incorrect password")
}

func TestLogin_PhonePointsToOTPFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, "POST", "/api/login", "", gin.H{"phone": "+919876543210"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "send-otp")
}

func TestWorkerOTPLogin(t *testing.T) {
	router, db := newTestRouter(t)

	token := loginWorker(t, router, db, "+919876543210")

	w := doJSON(router, "GET", "/api/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)
	assert.Equal(t, "worker", user["role"])
	assert.Equal(t, "+919876543210", user["phone"])

	// The code was cleared on verification; replaying it fails.
	var stored models.User
	require.NoError(t, db.Where("phone = ?", "+919876543210").First(&stored).Error)
	assert.Nil(t, stored.OTP)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	router, db := newTestRouter(t)

	w := doJSON(router, "POST", "/api/auth/send-otp", "", gin.H{"phone": "+919876543210"})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, db.Where("phone = ?", "+919876543210").First(&user).Error)
	wrong := "000000"
	if *user.OTP == wrong {
		wrong = "000001"
	}

	w = doJSON(router, "POST", "/api/auth/verify-otp", "", gin.H{"phone": "+919876543210", "otp": wrong})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGating(t *testing.T) {
	router, db := newTestRouter(t)
	workerToken := loginWorker(t, router, db, "+919876543210")
	employerToken := registerEmployer(t, router, "acme")

	// No session at all.
	w := doJSON(router, "POST", "/api/jobs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A worker session cannot create jobs.
	w = doJSON(router, "POST", "/api/jobs", workerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// An employer session cannot apply to jobs.
	w = doJSON(router, "POST", "/api/applications", employerToken, gin.H{"jobId": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Nor read a worker's application list.
	w = doJSON(router, "GET", "/api/applications/worker", employerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	router, db := newTestRouter(t)

	w := doJSON(router, "POST", "/api/register", "", gin.H{
		"role":     "admin",
		"username": "root",
		"password": "super_password123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	assert.Empty(t, token, "a rejected registration must not hand out a session")

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)

	// Without a seeded session the employer surface stays closed.
	w = doJSON(router, "GET", "/api/employer/jobs", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApplicationLifecycle(t *testing.T) {
	router, db := newTestRouter(t)
	employerToken := registerEmployer(t, router, "acme")
	workerToken := loginWorker(t, router, db, "+919876543210")

	jobID := createJob(t, router, employerToken, "Electrician")

	w := doJSON(router, "POST", "/api/applications", workerToken, gin.H{"jobId": jobID, "note": "Available now"})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	appID := uint(decode(t, w)["id"].(float64))

	// Applying twice to the same job conflicts.
	w = doJSON(router, "POST", "/api/applications", workerToken, gin.H{"jobId": jobID})
	assert.Equal(t, http.StatusConflict, w.Code)

	// The owning employer reviews and shortlists.
	w = doJSON(router, "GET", fmt.Sprintf("/api/applications/employer/%d", jobID), employerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pending")

	w = doJSON(router, "PUT", fmt.Sprintf("/api/applications/%d/status", appID), employerToken,
		gin.H{"status": "shortlisted"})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	// The decision is visible to the worker.
	w = doJSON(router, "GET", "/api/applications/worker", workerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shortlisted")

	// A different employer cannot touch it.
	otherToken := registerEmployer(t, router, "rival")
	w = doJSON(router, "PUT", fmt.Sprintf("/api/applications/%d/status", appID), otherToken,
		gin.H{"status": "rejected"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Out-of-enum statuses are rejected.
	w = doJSON(router, "PUT", fmt.Sprintf("/api/applications/%d/status", appID), employerToken,
		gin.H{"status": "hired"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApply_ClosedJobRejected(t *testing.T) {
	router, db := newTestRouter(t)
	employerToken := registerEmployer(t, router, "acme")
	workerToken := loginWorker(t, router, db, "+919876543210")

	jobID := createJob(t, router, employerToken, "Electrician")
	w := doJSON(router, "PUT", fmt.Sprintf("/api/jobs/%d/close", jobID), employerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/api/applications", workerToken, gin.H{"jobId": jobID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "closed")
}

func TestProfileRoundTrip(t *testing.T) {
	router, db := newTestRouter(t)
	token := loginWorker(t, router, db, "+919876543210")

	w := doJSON(router, "GET", "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/api/profile", token, gin.H{
		"bio":      "Electrician with 5 years of experience",
		"skills":   []string{"wiring", "repairs"},
		"location": "Pune",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	w = doJSON(router, "GET", "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wiring")
	assert.Contains(t, w.Body.String(), "Pune")

	// Profiles are private to the session.
	w = doJSON(router, "GET", "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
