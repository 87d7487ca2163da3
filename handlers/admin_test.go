// admin_test.go - Tests for the admin listing/deletion endpoints and the
// optional admin authorization gate

package handlers

import (
	"encoding/json" // For decoding list responses
	"fmt"           // For building delete paths
	"net/http"      // HTTP requests
	"net/http/httptest"
	"testing" // Go's testing package

	"pecerapp-backend/middleware" // Admin authorization middleware

	"github.com/gin-gonic/gin"           // Gin web framework
	"github.com/stretchr/testify/assert" // For assertions
)

// setupAdminRouter returns a Gin engine with the admin routes. When
// enforce is true the admin gate middleware is applied, mirroring
// ADMIN_AUTH=on.
func setupAdminRouter(h *Handler, enforce bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.POST("/register", h.Register) // Needed to create fixture users
	r.POST("/login", h.Login)       // Needed to obtain tokens

	admin := r.Group("/admin")
	if enforce {
		admin.Use(middleware.AdminMiddleware(h.Config.JWTSecret, h.Users))
	}
	admin.GET("/users", h.ListUsers)
	admin.DELETE("/users/:id", h.DeleteUser)
	return r
}

// TestListUsersExcludesPassword verifies the listing shape and that no
// password ever reaches the client.
func TestListUsersExcludesPassword(t *testing.T) {
	h := newTestHandler(t, "test_admin_list.db", "legacy")
	router := setupAdminRouter(h, false)

	reg := RegisterInput{Nombre: "A", Apellido: "B", Correo: "a@x.com", Usuario: "alice", Contrasena: "p1"}
	w := doJSON(t, router, "POST", "/register", reg)
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, router, "GET", "/admin/users", nil)
	assert.Equal(t, 200, w.Code)

	var users []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2) // Seeded admin plus alice

	for _, u := range users {
		assert.Contains(t, u, "usuario")
		assert.Contains(t, u, "correo")
		assert.Contains(t, u, "rol")
		assert.NotContains(t, u, "contraseña") // Never serialized
	}
}

// TestDeleteUserIsIdempotent verifies deletion reports success for both a
// real row and an already-deleted one.
func TestDeleteUserIsIdempotent(t *testing.T) {
	h := newTestHandler(t, "test_admin_delete.db", "legacy")
	router := setupAdminRouter(h, false)

	reg := RegisterInput{Nombre: "A", Apellido: "B", Correo: "a@x.com", Usuario: "alice", Contrasena: "p1"}
	w := doJSON(t, router, "POST", "/register", reg)
	assert.Equal(t, 200, w.Code)
	userID := decodeBody(t, w)["userId"].(float64)

	path := fmt.Sprintf("/admin/users/%d", int(userID))
	for i := 0; i < 2; i++ { // Both deletes succeed
		w = doJSON(t, router, "DELETE", path, nil)
		assert.Equal(t, 200, w.Code)
		assert.Equal(t, "Usuario eliminado con éxito", decodeBody(t, w)["message"])
	}

	w = doJSON(t, router, "DELETE", "/admin/users/99999", nil) // Never-existing id
	assert.Equal(t, 200, w.Code)
}

// TestDeleteUserBadID verifies a non-numeric id is rejected.
func TestDeleteUserBadID(t *testing.T) {
	h := newTestHandler(t, "test_admin_badid.db", "legacy")
	router := setupAdminRouter(h, false)

	w := doJSON(t, router, "DELETE", "/admin/users/abc", nil)
	assert.Equal(t, 400, w.Code)
}

// TestAdminGateEnforcement verifies the ADMIN_AUTH=on behavior: no token
// 401, non-admin token 403, admin token 200.
func TestAdminGateEnforcement(t *testing.T) {
	h := newTestHandler(t, "test_admin_gate.db", "legacy")
	router := setupAdminRouter(h, true)

	// Create a regular user and collect both tokens via login
	reg := RegisterInput{Nombre: "A", Apellido: "B", Correo: "a@x.com", Usuario: "alice", Contrasena: "p1"}
	w := doJSON(t, router, "POST", "/register", reg)
	assert.Equal(t, 200, w.Code)

	w = doJSON(t, router, "POST", "/login", LoginInput{Usuario: "alice", Contrasena: "p1"})
	assert.Equal(t, 200, w.Code)
	userToken := decodeBody(t, w)["token"].(string)

	w = doJSON(t, router, "POST", "/login", LoginInput{Usuario: "admin", Contrasena: "admin123"})
	assert.Equal(t, 200, w.Code)
	adminToken := decodeBody(t, w)["token"].(string)

	// No token: 401
	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/users", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)

	// Regular user token: 403
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, 403, w.Code)

	// Admin token: 200
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}
