package jobly

import "time"

const (
	DefaultAPIBaseURL = "http://localhost:3001"
	DefaultTimeout    = 10 * time.Second
)

type Config struct {
	APIBaseURL string        // default: "http://localhost:3001"
	Timeout    time.Duration // default: 10s, per request
	LogLevel   string        // default: "info"
	LogFormat  string        // "json" or "console", default: "console"
}

func (c Config) withDefaults() Config {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "console"
	}
	return c
}
