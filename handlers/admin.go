// admin.go - Handles the admin user listing and deletion endpoints

package handlers // Declares the package name

import ( // Import required packages
	"log"      // For logging store failures
	"net/http" // HTTP status codes
	"strconv"  // For parsing the :id route parameter

	"github.com/gin-gonic/gin" // Gin web framework
)

func (h *Handler) ListUsers(c *gin.Context) { // Handler to list all users
	users, err := h.Users.List(c.Request.Context()) // Password-free projection
	if err != nil {
		log.Printf("Error al obtener usuarios: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener usuarios"})
		return
	}
	c.JSON(http.StatusOK, users) // Plain JSON array, matching the legacy shape
}

func (h *Handler) DeleteUser(c *gin.Context) { // Handler to delete a user by id
	id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse :id route parameter
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	// Deleting an absent id is a no-op; the response does not distinguish
	// "deleted" from "was already gone".
	if err := h.Users.Delete(c.Request.Context(), uint(id)); err != nil {
		log.Printf("Error al eliminar usuario: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado con éxito"})
}
