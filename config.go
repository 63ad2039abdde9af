package cognidb

import (
	"time"

	"go.uber.org/zap"
)

// Config defines the configuration for the connection.
type Config struct {
	// Endpoint is the URL of the CogniDB server, e.g. "https://cloud.cognidb.com"
	// or "http://127.0.0.1:47334" for a local instance.
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	// User is the account identifier to authenticate with. Leave empty to
	// connect without authentication (local instances).
	User string `json:"user" yaml:"user"`
	// Password is the account secret.
	Password string `json:"password" yaml:"password"`
	// Managed selects the managed-instance login path instead of the cloud one.
	Managed bool `json:"managed" yaml:"managed"`
	// Timeout bounds each HTTP request. Zero means DefaultTimeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	// Logger receives debug-level request and reauthentication events.
	// Nil means no logging.
	Logger *zap.Logger `json:"-" yaml:"-"`
}

// DefaultTimeout is the per-request timeout used when Config.Timeout is zero.
const DefaultTimeout = 60 * time.Second

func (c *Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

func (c *Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}
