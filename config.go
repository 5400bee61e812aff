package mailtm

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings read from the environment. Variables use
// the MAILTM_ prefix, for example MAILTM_BASE_URL=http://localhost:8080.
type Config struct {
	BaseURL   string        `envconfig:"BASE_URL"   default:"https://api.mail.tm"`
	Timeout   time.Duration `envconfig:"TIMEOUT"    default:"0s"`
	Debug     bool          `envconfig:"DEBUG"      default:"false"`
	UserAgent string        `envconfig:"USER_AGENT" default:""`

	// Token is not used by the client itself; tools read it to call
	// protected endpoints.
	Token string `envconfig:"TOKEN" default:""`
}

// LoadConfig populates Config from environment variables (prefix MAILTM_).
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process("MAILTM", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Options converts the configuration into client options.
func (c Config) Options() []Option {
	opts := []Option{
		WithBaseURL(c.BaseURL),
		WithDebugLogging(c.Debug),
	}
	if c.Timeout > 0 {
		opts = append(opts, WithTimeout(c.Timeout))
	}
	if c.UserAgent != "" {
		opts = append(opts, WithUserAgent(c.UserAgent))
	}
	return opts
}
