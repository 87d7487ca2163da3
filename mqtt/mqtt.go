// mqtt.go - MQTT publisher for telemetry readings

package mqtt // Declares the package name

import ( // Import required packages
	"encoding/json" // For encoding payloads
	"time"          // For connect/publish timeouts

	paho "github.com/eclipse/paho.mqtt.golang" // Eclipse Paho MQTT client
)

type Publisher struct { // Publisher wraps a connected MQTT client
	client paho.Client // Underlying Paho client
}

// Connect dials the broker and returns a ready publisher.
func Connect(broker string) (*Publisher, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).                // Broker address, e.g. tcp://localhost:1883
		SetClientID("pecerapp-backend").  // Stable client ID
		SetConnectTimeout(5 * time.Second) // Don't hang startup on a dead broker

	client := paho.NewClient(opts)
	token := client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return nil, err
	}
	return &Publisher{client: client}, nil
}

// Publish sends a JSON-encoded payload to the given topic. The publish is
// best-effort: a short wait, then the error (if any) is returned to the
// caller to log and drop.
func (p *Publisher) Publish(topic string, payload interface{}) error {
	data, err := json.Marshal(payload) // Encode payload as JSON
	if err != nil {
		return err
	}
	token := p.client.Publish(topic, 0, false, data) // QoS 0, not retained
	token.WaitTimeout(2 * time.Second)
	return token.Error()
}

// Disconnect closes the broker connection.
func (p *Publisher) Disconnect() {
	p.client.Disconnect(250) // Allow 250ms for in-flight messages
}
