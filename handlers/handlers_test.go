// handlers_test.go - Shared helpers for handler tests
// Run with: go test ./...

package handlers

import (
	"bytes"             // For building request bodies
	"encoding/json"     // For encoding/decoding JSON
	"net/http"          // HTTP requests
	"net/http/httptest" // HTTP test helpers
	"os"                // For file operations
	"testing"           // Go's testing package

	"pecerapp-backend/config"     // Project config
	"pecerapp-backend/database"   // Database connection
	"pecerapp-backend/repository" // User data access

	"github.com/gin-gonic/gin" // Gin web framework
)

// newTestHandler builds a Handler over a fresh test database. The auth
// mode is applied before connecting so the admin seed matches it.
func newTestHandler(t *testing.T, path, authMode string) *Handler {
	t.Helper()
	_ = os.Remove(path) // Remove old test DB if exists
	t.Cleanup(func() { _ = os.Remove(path) })

	cfg := config.Load() // Load config
	cfg.DBPath = path    // Use a separate test DB
	cfg.AuthMode = authMode

	db, err := database.Connect(cfg) // Connect, migrate and seed admin
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	return New(repository.NewUserRepository(db), nil, nil, cfg)
}

// setupAuthRouter returns a Gin engine with the public auth routes.
func setupAuthRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()              // New Gin router
	r.POST("/register", h.Register) // Register endpoint
	r.POST("/login", h.Login)       // Login endpoint
	return r
}

// doJSON performs a request with a JSON body and returns the recorder.
func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload) // Encode input as JSON
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	w := httptest.NewRecorder()                        // Record HTTP response
	req, _ := http.NewRequest(method, path, body)      // Build request
	req.Header.Set("Content-Type", "application/json") // Set header
	r.ServeHTTP(w, req)                                // Serve request
	return w
}

// decodeBody unmarshals a recorder body into a generic map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}
