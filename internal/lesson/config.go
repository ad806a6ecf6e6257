package lesson

import "time"

// DefaultEndpoint is the backend address the form posts to.
const DefaultEndpoint = "http://localhost:8000/generate"

// Config holds lesson client settings.
type Config struct {
	// Endpoint is the full URL of the generate endpoint.
	Endpoint string

	// Timeout bounds a single request. Zero means no client-side limit;
	// the request waits as long as the network layer allows.
	Timeout time.Duration
}

// DefaultConfig returns the defaults: the fixed local endpoint, no timeout.
func DefaultConfig() Config {
	return Config{
		Endpoint: DefaultEndpoint,
	}
}
