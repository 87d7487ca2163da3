// client.go - HTTP client for the Ubidots telemetry API

package ubidots // Declares the package name

import ( // Import required packages
	"context"       // For cancellation of in-flight fetches
	"encoding/json" // For decoding upstream responses
	"fmt"           // For error formatting
	"io"            // For reading error bodies
	"net/http"      // HTTP client
	"time"          // For the request timeout

	"golang.org/x/sync/errgroup" // Concurrent fan-out with joined errors
)

// Reading is the normalized shape of one upstream variable value.
type Reading struct {
	Label string  `json:"label"` // "temperature" or "distance"
	ID    string  `json:"id"`    // Upstream variable ID
	Value float64 `json:"value"` // Last reported value
}

// UpstreamError wraps whatever detail the provider returned. The detail is
// logged server-side only; clients get a generic message.
type UpstreamError struct {
	Detail string // Raw upstream status/body or transport error
}

func (e *UpstreamError) Error() string {
	return "ubidots: " + e.Detail
}

type Client struct { // Client fetches variable values from Ubidots
	baseURL          string       // Variables API base URL
	token            string       // X-Auth-Token value
	temperatureVarID string       // Variable ID for temperature
	distanceVarID    string       // Variable ID for distance
	httpClient       *http.Client // Underlying HTTP client with timeout
}

// NewClient builds a client for the two configured variables. A zero
// timeout disables the client-side deadline.
func NewClient(baseURL, token, temperatureVarID, distanceVarID string, timeout time.Duration) *Client {
	return &Client{
		baseURL:          baseURL,
		token:            token,
		temperatureVarID: temperatureVarID,
		distanceVarID:    distanceVarID,
		httpClient:       &http.Client{Timeout: timeout},
	}
}

// variableResponse mirrors the part of the upstream payload we care about.
type variableResponse struct {
	LastValue *struct {
		Value float64 `json:"value"`
	} `json:"last_value"`
}

// FetchReadings fetches the last value of both variables concurrently and
// returns them in a fixed order: temperature first, distance second.
// If either fetch fails the whole call fails; there is no partial result.
// Cancelling ctx (e.g. client disconnect) cancels both in-flight requests.
func (c *Client) FetchReadings(ctx context.Context) ([]Reading, error) {
	g, ctx := errgroup.WithContext(ctx) // Failing fetch cancels the sibling

	var temperature, distance float64
	g.Go(func() error { // Fetch temperature
		v, err := c.fetchLastValue(ctx, c.temperatureVarID)
		if err != nil {
			return err
		}
		temperature = v
		return nil
	})
	g.Go(func() error { // Fetch distance
		v, err := c.fetchLastValue(ctx, c.distanceVarID)
		if err != nil {
			return err
		}
		distance = v
		return nil
	})

	if err := g.Wait(); err != nil { // All-or-nothing join
		return nil, err
	}

	return []Reading{
		{Label: "temperature", ID: c.temperatureVarID, Value: temperature},
		{Label: "distance", ID: c.distanceVarID, Value: distance},
	}, nil
}

// fetchLastValue performs one GET <base>/<varID> and extracts
// last_value.value from the response body.
func (c *Client) fetchLastValue(ctx context.Context, varID string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+varID, nil)
	if err != nil {
		return 0, &UpstreamError{Detail: err.Error()}
	}
	req.Header.Set("X-Auth-Token", c.token) // Ubidots auth header

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &UpstreamError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 { // Non-2xx is a failure
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512)) // Keep the upstream detail for the log
		return 0, &UpstreamError{Detail: fmt.Sprintf("variable %s: status %d: %s", varID, resp.StatusCode, body)}
	}

	var payload variableResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, &UpstreamError{Detail: fmt.Sprintf("variable %s: malformed body: %v", varID, err)}
	}
	if payload.LastValue == nil { // Variable exists but has never reported
		return 0, &UpstreamError{Detail: fmt.Sprintf("variable %s: no last_value in response", varID)}
	}
	return payload.LastValue.Value, nil
}
