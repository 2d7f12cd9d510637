package secrets

import (
	"context"       // Startup-scoped AWS calls
	"encoding/json" // Secret payload decoding
	"errors"        // Binary-secret rejection
	"strconv"       // Port formatting

	"todo_service/internal/config" // Config struct being overridden

	"github.com/aws/aws-sdk-go-v2/aws"                    // AWS helpers
	awsconfig "github.com/aws/aws-sdk-go-v2/config"       // Default credential chain
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager" // Secrets Manager client
	"github.com/sirupsen/logrus"                          // Structured logging
)

// Values is the JSON shape stored under the configured secret name. Empty
// fields leave the corresponding config value untouched.
type Values struct {
	DBHost        string `json:"dbHost"`        // Database host override
	DBPort        int    `json:"dbPort"`        // Database port override
	DBName        string `json:"dbName"`        // Database name override
	DBUser        string `json:"dbUser"`        // Database user override
	DBPassword    string `json:"dbPassword"`    // Database password override
	RedisHost     string `json:"redisHost"`     // Redis host override
	RedisPort     int    `json:"redisPort"`     // Redis port override
	RedisPassword string `json:"redisPassword"` // Redis password override
	JWTSecret     string `json:"jwtSecret"`     // Token signing secret override
}

// Client is the Secrets Manager surface this package needs
type Client interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, opts ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// NewClient builds a Secrets Manager client from the default credential chain
func NewClient(ctx context.Context, region string) (Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return secretsmanager.NewFromConfig(awsCfg), nil
}

// Fetch retrieves and decodes the secret payload
func Fetch(ctx context.Context, client Client, name string) (*Values, error) {
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: aws.String(name)})
	if err != nil {
		return nil, err
	}
	if out.SecretString == nil {
		// Binary secrets are not supported
		return nil, errors.New("secret is in binary format which is not supported")
	}
	var vals Values
	if err := json.Unmarshal([]byte(*out.SecretString), &vals); err != nil {
		return nil, err
	}
	logrus.Info("Secrets successfully loaded from AWS Secrets Manager")
	return &vals, nil
}

// Apply copies the populated secret fields onto the config
func Apply(cfg *config.Config, vals *Values) {
	if vals.DBHost != "" {
		cfg.DBHost = vals.DBHost
	}
	if vals.DBPort != 0 {
		cfg.DBPort = strconv.Itoa(vals.DBPort)
	}
	if vals.DBName != "" {
		cfg.DBName = vals.DBName
	}
	if vals.DBUser != "" {
		cfg.DBUser = vals.DBUser
	}
	if vals.DBPassword != "" {
		cfg.DBPassword = vals.DBPassword
	}
	if vals.RedisHost != "" {
		port := 6379 // Default Redis port when the secret omits it
		if vals.RedisPort != 0 {
			port = vals.RedisPort
		}
		cfg.RedisAddr = vals.RedisHost + ":" + strconv.Itoa(port)
	}
	if vals.RedisPassword != "" {
		cfg.RedisPass = vals.RedisPassword
	}
	if vals.JWTSecret != "" {
		cfg.JWTSecret = vals.JWTSecret
	}
}

// Override fetches the configured secret and applies it onto cfg. The
// caller decides whether a retrieval failure is fatal: production must not
// start on static defaults, development may.
func Override(ctx context.Context, cfg *config.Config) error {
	client, err := NewClient(ctx, cfg.AWSRegion)
	if err != nil {
		return err
	}
	vals, err := Fetch(ctx, client, cfg.AWSSecretName)
	if err != nil {
		return err
	}
	Apply(cfg, vals)
	logrus.Info("Configuration updated with secrets from AWS Secrets Manager")
	return nil
}
