// telemetry.go - Proxies the Ubidots sensor readings to the browser

package handlers // Declares the package name

import ( // Import required packages
	"log"      // For logging upstream failures and readings
	"net/http" // HTTP status codes

	"pecerapp-backend/ubidots" // Telemetry client

	"github.com/gin-gonic/gin" // Gin web framework
)

// GetPecerasData fetches the temperature and distance readings from
// Ubidots and returns them in the legacy {variables: [...]} shape. Both
// upstream fetches run concurrently; if either fails the whole request
// fails with a generic message and the raw detail goes to the log only.
func (h *Handler) GetPecerasData(c *gin.Context) {
	readings, err := h.Telemetry.FetchReadings(c.Request.Context())
	if err != nil {
		log.Printf("Error al obtener datos de Ubidots: %v", err) // Raw upstream detail, server-side only
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener los datos de Ubidots"})
		return
	}

	log.Printf("[PECERAS DATA] -> Temperature: %v°C, Distance: %vcm", readings[0].Value, readings[1].Value)

	if h.MQTT != nil { // Republish to the broker when one is configured
		go h.publishReadings(readings) // Fire and forget, never blocks the response
	}

	c.JSON(http.StatusOK, gin.H{"variables": readings})
}

// publishReadings pushes each reading to its peceras/<label> topic.
// Publish errors are logged and dropped.
func (h *Handler) publishReadings(readings []ubidots.Reading) {
	for _, r := range readings {
		if err := h.MQTT.Publish("peceras/"+r.Label, r); err != nil {
			log.Printf("Error al publicar lectura %s por MQTT: %v", r.Label, err)
		}
	}
}
