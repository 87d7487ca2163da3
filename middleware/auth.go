// auth.go - JWT authentication middleware
//
// Authentication Flow:
// 1. Extract JWT token from Authorization header
// 2. Validate token signature and expiration
// 3. Extract user ID from token claims
// 4. Store user ID in context for handlers
//
// Authorization Flow (Admin):
// 1. Run authentication middleware first
// 2. Extract user ID from context
// 3. Query database for user details
// 4. Check if user has admin role
// 5. Allow/deny access based on role
//
// The admin gate is wired onto the /admin group only when ADMIN_AUTH=on,
// so the legacy open admin surface keeps working until enforcement is
// turned on.

package middleware // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes (401, 403, etc.)
	"strings"  // String operations (for header parsing)

	"pecerapp-backend/repository" // User lookups for role checking

	"github.com/gin-gonic/gin"     // Gin web framework (for middleware)
	"github.com/golang-jwt/jwt/v5" // JWT library (for token validation)
)

// AuthMiddleware validates the Bearer token and stores the user ID from
// its claims in the Gin context under "user_id".
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		// STEP 1: Extract Authorization header
		header := c.GetHeader("Authorization")                     // Get Authorization header
		if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"}) // Return 401 Unauthorized
			return
		}

		// STEP 2: Parse JWT token
		tokenStr := strings.TrimPrefix(header, "Bearer ")                               // Remove 'Bearer ' prefix
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) { // Parse JWT
			return []byte(secret), nil // Provide secret key for validation
		})
		if err != nil || !token.Valid { // If token is invalid or expired
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"}) // Return 401 Unauthorized
			return
		}

		// STEP 3: Extract user ID from token and store in context for later use
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if userID, exists := claims["user_id"]; exists {
				c.Set("user_id", userID) // Store user ID in Gin context
			}
		}

		c.Next() // Continue to next handler (authentication successful)
	}
}

// AdminMiddleware extends AuthMiddleware with a role check against the
// user store. Only users with rol "admin" pass.
func AdminMiddleware(secret string, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) { // Middleware handler (runs before admin endpoints)
		// STEP 1: Run the standard authentication middleware first
		AuthMiddleware(secret)(c) // Call the auth middleware on the same context
		if c.IsAborted() {
			return // Exit early - authentication failed
		}

		// STEP 2: Extract user ID from context (set by AuthMiddleware)
		userIDInterface, exists := c.Get("user_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user ID not found in token"})
			return
		}

		// STEP 3: Convert user ID to uint (JWT numbers are stored as float64)
		userID, ok := userIDInterface.(float64) // JWT numbers are float64
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID format"})
			return
		}

		// STEP 4: Query database to get user details and check role
		user, err := users.FindByID(c.Request.Context(), uint(userID))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		if user.Rol != "admin" { // Only admins may pass
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		c.Next() // Continue to next handler (admin access granted)
	}
}
