package config

import (
	"time" // Durations for token lifetime and cache TTL

	"github.com/caarlos0/env/v11" // Env-tag struct parsing
	"github.com/joho/godotenv"    // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"3000"`       // Application port
	AppEnv  string `env:"APP_ENV" envDefault:"development"` // Environment name

	DBHost     string `env:"DB_HOST" envDefault:"localhost"` // Database host
	DBPort     string `env:"DB_PORT" envDefault:"3306"`      // Database port
	DBName     string `env:"DB_NAME" envDefault:"tododb"`    // Database name
	DBUser     string `env:"DB_USER" envDefault:"root"`      // Database user
	DBPassword string `env:"DB_PASSWORD"`                    // Database password

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"` // Redis server address
	RedisPass string `env:"REDIS_PASS"`                             // Redis password
	RedisDB   int    `env:"REDIS_DB"`                               // Redis database number

	JWTSecret     string        `env:"JWT_SECRET" envDefault:"default_jwt_secret_do_not_use_in_production"` // JWT signing secret
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"1h"`                                      // Token lifetime

	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"1h"` // Cache entry TTL

	AWSRegion     string `env:"AWS_REGION" envDefault:"eu-west-3"`                  // Secrets Manager region
	AWSSecretName string `env:"AWS_SECRET_NAME" envDefault:"todo-service/secrets"` // Secrets Manager secret id
}

// IsProd reports whether the process runs in production mode
func (c *Config) IsProd() bool {
	return c.AppEnv == "production"
}

// DSN builds the MySQL connection string. The 2s dial timeout bounds
// connection acquisition when the database is unreachable.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true&timeout=2s"
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err // Malformed environment value
	}
	return cfg, nil
}
