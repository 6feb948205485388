// setup_test.go - Shared test fixtures for the handler tests

package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"feedback-backend/auth"
	"feedback-backend/config"
	"feedback-backend/database"
	"feedback-backend/middleware"
	"feedback-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// testUploadLimit mirrors the production 70 MiB upload cap at a size a unit
// test can exceed without allocating a huge body.
const testUploadLimit = 4 << 10

type sentMail struct {
	to, subject, body string
}

// fakeMailer records outgoing mail instead of dialing a relay.
type fakeMailer struct {
	err  error
	sent []sentMail
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

// setupTest wires a fresh database, asset directory and router for one test.
// Routes mirror routes.SetupRoutes; they are registered here directly because
// the routes package imports this one.
func setupTest(t *testing.T) (*gin.Engine, *fakeMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testCfg := config.Load()
	testCfg.DBPath = filepath.Join(t.TempDir(), "test.db")
	testCfg.JWTSecret = "test-secret"
	testCfg.AdminUsername = "admin"
	testCfg.AdminPassword = "adminpass"

	if err := database.Connect(testCfg); err != nil {
		t.Fatalf("connect test database: %v", err)
	}

	fm := &fakeMailer{}
	Init(testCfg, storage.NewManager(t.TempDir()), fm)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/login", Login)
	api.GET("/businesses", ListBusinesses)
	api.GET("/businesses/subdomain/:subdomain", GetBusinessBySubdomain)
	api.POST("/businesses/subdomain/:subdomain/feedback", CreateFeedback)
	api.POST("/send-review", SendReview)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(testCfg.JWTSecret))
	{
		protected.POST("/businesses", CreateBusiness)
		protected.POST("/businesses/create", middleware.BodyLimit(testUploadLimit), CreateBusinessWithImages)
		protected.PUT("/businesses/:subdomain", middleware.BodyLimit(testUploadLimit), UpdateBusiness)
		protected.DELETE("/businesses/:subdomain", DeleteBusiness)
		protected.POST("/businesses/:subdomain/upload", middleware.BodyLimit(testUploadLimit), UploadImage)
		protected.GET("/businesses/subdomain/:subdomain/feedback", ListFeedback)
	}

	return r, fm
}

// adminToken issues a valid token the way a successful login would.
func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.IssueToken(cfg.AdminUsername, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doForm performs a multipart request with form fields and optional files.
func doForm(r *gin.Engine, method, path string, fields map[string]string, files map[string]string, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	for field, content := range files {
		fw, _ := mw.CreateFormFile(field, field+".png")
		_, _ = io.Copy(fw, strings.NewReader(content))
	}
	_ = mw.Close()

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// createTestBusiness creates a business through the JSON endpoint.
func createTestBusiness(t *testing.T, r *gin.Engine, token string, fields map[string]string) {
	t.Helper()
	w := doJSON(r, "POST", "/api/businesses", fields, token)
	assert.Equal(t, http.StatusCreated, w.Code)
}
