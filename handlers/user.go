// user.go - Handles user registration and login

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // For sentinel error checks
	"log"      // For logging store failures
	"net/http" // HTTP status codes
	"time"     // For token expiration

	"pecerapp-backend/models"     // User model
	"pecerapp-backend/repository" // Repository sentinel errors

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
	"golang.org/x/crypto/bcrypt"   // Password hashing (secure mode)
)

type RegisterInput struct { // Struct for registration input
	Nombre     string `json:"nombre"`     // First name
	Apellido   string `json:"apellido"`   // Last name
	Correo     string `json:"correo"`     // Email
	Usuario    string `json:"usuario"`    // Username
	Contrasena string `json:"contraseña"` // Password
}

type LoginInput struct { // Struct for login input
	Usuario    string `json:"usuario"`    // Username
	Contrasena string `json:"contraseña"` // Password
}

func (h *Handler) Register(c *gin.Context) { // Handler for user registration
	var input RegisterInput                          // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if invalid
		return
	}

	contrasena := input.Contrasena           // Stored verbatim in legacy mode
	if h.Config.AuthMode == "secure" {       // Hash before storing in secure mode
		hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
			return
		}
		contrasena = string(hash)
	}

	user, err := h.Users.Create(c.Request.Context(), input.Nombre, input.Apellido, input.Correo, input.Usuario, contrasena)
	if errors.Is(err, repository.ErrConflict) { // Username or email already taken
		c.JSON(http.StatusBadRequest, gin.H{"error": "Usuario o correo ya existe."})
		return
	}
	if err != nil { // Underlying store failure
		log.Printf("Error al registrar usuario: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{ // Success response
		"message": "Registro exitoso",
		"userId":  user.ID,
	})
}

func (h *Handler) Login(c *gin.Context) { // Handler for user login
	var input LoginInput                             // Declare input variable
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Return error if invalid
		return
	}

	user, err := h.lookupUser(c, input) // Credential check per auth mode
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario o contraseña incorrectos"})
		return
	}
	if err != nil { // Underlying store failure
		log.Printf("Error al buscar usuario: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	// JWT generation
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{ // Create JWT token
		"user_id": user.ID,                               // Add user ID to token
		"rol":     user.Rol,                              // Add role to token
		"exp":     time.Now().Add(time.Hour * 72).Unix(), // Set expiration (72 hours)
	})
	tokenString, err := token.SignedString([]byte(h.Config.JWTSecret)) // Sign token
	if err != nil {
		log.Printf("Error al firmar token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en el servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{ // Success response (legacy fields plus token)
		"userId": user.ID,
		"nombre": user.Nombre,
		"rol":    user.Rol,
		"token":  tokenString,
	})
}

// lookupUser resolves credentials according to the configured auth mode:
// exact-match lookup in legacy mode, bcrypt verification in secure mode.
func (h *Handler) lookupUser(c *gin.Context, input LoginInput) (*models.User, error) {
	if h.Config.AuthMode == "secure" {
		u, err := h.Users.FindByUsername(c.Request.Context(), input.Usuario)
		if err != nil {
			return nil, err
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.Contrasena), []byte(input.Contrasena)); err != nil {
			return nil, err
		}
		return u, nil
	}
	return h.Users.FindByCredentials(c.Request.Context(), input.Usuario, input.Contrasena)
}
