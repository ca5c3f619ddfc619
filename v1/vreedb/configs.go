package vreedb

import "time"

// Config holds the construction parameters of a Client.
//
// Example:
//
//	cfg := vreedb.FromHost("https://vectors.internal").
//	    WithAPIKey(apiKey).
//	    WithTimeout(10 * time.Second)
//	client, err := vreedb.NewClient(cfg)
type Config struct {
	// Host is the loosely specified server address: "", "myhost", "myhost:9000",
	// "https://myhost" ... It is normalized once by ResolveEndpoint.
	Host string `yaml:"host" envconfig:"VREEDB_HOST"`

	// Timeout bounds every request, including reading the response body.
	// Zero disables the timeout; negative values are rejected.
	Timeout time.Duration `yaml:"timeout" envconfig:"VREEDB_TIMEOUT"`

	// APIKey is sent verbatim as "api_key" in every request body.
	// An empty key is sent as null.
	APIKey string `yaml:"api_key" envconfig:"VREEDB_API_KEY"`

	// UserAgent overrides the User-Agent header. Empty keeps the default.
	UserAgent string `yaml:"user_agent" envconfig:"VREEDB_USER_AGENT"`
}

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "vreedb-go/1"

// DefaultConfig targets http://127.0.0.1:8080 with a 30 second timeout.
func DefaultConfig() Config {
	return Config{
		Timeout:   30 * time.Second,
		UserAgent: DefaultUserAgent,
	}
}

// FromHost returns DefaultConfig with Host set.
func FromHost(host string) Config {
	cfg := DefaultConfig()
	cfg.Host = host
	return cfg
}

func (c Config) WithAPIKey(key string) Config {
	c.APIKey = key
	return c
}

func (c Config) WithTimeout(d time.Duration) Config {
	c.Timeout = d
	return c
}

func (c Config) WithUserAgent(ua string) Config {
	c.UserAgent = ua
	return c
}
