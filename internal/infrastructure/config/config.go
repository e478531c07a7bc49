package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full environment-sourced configuration surface.
type Config struct {
	AppName     string `env:"APP_NAME,    default=Identity API"`
	Debug       bool   `env:"DEBUG,       default=true"`
	Port        int    `env:"PORT,        default=8080"`
	APIPrefix   string `env:"API_PREFIX,  default=/api"`
	CORSOrigins string `env:"CORS_ORIGINS, default=http://localhost:3000"`
	Environment string `env:"ENVIRONMENT, default=developer"`
	LogLevel    string `env:"LOG_LEVEL,   default=info"`

	Mongo MongoConfig
	JWT   JWTConfig
}

type MongoConfig struct {
	URL      string `env:"MONGODB_URL,   default=mongodb://localhost:27017"`
	Database string `env:"DATABASE_NAME, default=test"`
}

type JWTConfig struct {
	PrivateKeyPath           string `env:"JWT_PRIVATE_KEY_PATH, default=private.pem"`
	PublicKeyPath            string `env:"JWT_PUBLIC_KEY_PATH,  default=public.pem"`
	AccessTokenExpireMinutes int    `env:"JWT_ACCESS_TOKEN_EXPIRE_MINUTES, default=1440"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// TokenTTL converts the configured token lifetime in minutes to a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTokenExpireMinutes) * time.Minute
}

// AllowedOrigins splits the comma-separated CORS origins list.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
