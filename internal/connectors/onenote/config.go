package onenote

import "time"

const (
	// DefaultBaseURL is the versioned root of the Graph OneNote API.
	DefaultBaseURL = "https://graph.microsoft.com/v1.0/me/onenote/"

	// MinRetryWait is the backoff floor after a 429 response.
	MinRetryWait = time.Minute

	// MaxRetryWait is the backoff ceiling. Waits double from the floor
	// up to this value and stay there.
	MaxRetryWait = 10 * time.Minute

	// ProactiveRate is the sustained request rate of the token bucket
	// that throttles requests before the API has to. Graph throttles
	// OneNote reads aggressively; staying below the limit is cheaper
	// than recovering from it.
	ProactiveRate = 4.0

	// ProactiveBurst is the token bucket burst size.
	ProactiveBurst = 8
)

// Config holds the tunable parts of the Graph client. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	BaseURL      string
	MinRetryWait time.Duration
	MaxRetryWait time.Duration
	// RequestsPerSecond and Burst configure the proactive throttle.
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		MinRetryWait:      MinRetryWait,
		MaxRetryWait:      MaxRetryWait,
		RequestsPerSecond: ProactiveRate,
		Burst:             ProactiveBurst,
	}
}
