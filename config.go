package signedcookies

import (
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds signed-cookie configuration
type Config struct {
	// Secrets is a comma-separated list of signing secrets. The first one
	// signs new cookies, the rest remain valid for reads (key rotation).
	Secrets string `env:"SIGNEDCOOKIES_SECRETS" envDefault:""`

	// Salt namespaces both the signing keys and the hashed cookie names.
	Salt string `env:"SIGNEDCOOKIES_SALT" envDefault:"signed-cookie"`

	Path     string `env:"SIGNEDCOOKIES_PATH" envDefault:"/"`
	Domain   string `env:"SIGNEDCOOKIES_DOMAIN" envDefault:""`
	Secure   bool   `env:"SIGNEDCOOKIES_SECURE" envDefault:"false"`
	HTTPOnly bool   `env:"SIGNEDCOOKIES_HTTP_ONLY" envDefault:"true"`
}

// DefaultConfig returns default signed-cookie configuration
func DefaultConfig() Config {
	return Config{
		Secrets:  "",
		Salt:     "signed-cookie",
		Path:     "/",
		Domain:   "",
		Secure:   false,
		HTTPOnly: true,
	}
}

var defaultEnvLoaded sync.Once

// LoadConfig reads configuration from environment variables, loading a .env
// file first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseSecrets splits the secrets string into a slice
func (c Config) parseSecrets() []string {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))

	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s != "" {
			secrets = append(secrets, s)
		}
	}

	return secrets
}

// NewFromConfig creates a new Manager from the provided Config, backed by a
// CookieSession built from the same Config.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	session, err := NewCookieSession(cfg)
	if err != nil {
		return nil, err
	}
	return New(session, opts...)
}
