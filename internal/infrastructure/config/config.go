package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreBolt     = "bolt"
	StorePostgres = "postgres"
)

var ErrUnknownStore = errors.New("unknown PAYMENT_STORE")

// Config holds the service configuration read from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - PAYMENT_STORE: dynamodb | bolt | postgres (default: dynamodb)
//   - BOLT_PATH (default: escrow.db)
//   - DATABASE_URL (postgres store only)
//   - JWT_SECRET (required)
//   - ESCROW_STRICT_TRANSITIONS (default: true)
//
// DynamoDB settings are read by database.NewDynamoDBConfigFromEnv.
type Config struct {
	Port              int
	PaymentStore      string
	BoltPath          string
	DatabaseURL       string
	JWTSecret         string
	StrictTransitions bool
}

func Load() (*Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	strict, err := strconv.ParseBool(getenvDefault("ESCROW_STRICT_TRANSITIONS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid ESCROW_STRICT_TRANSITIONS: %w", err)
	}

	cfg := &Config{
		Port:              port,
		PaymentStore:      strings.ToLower(getenvDefault("PAYMENT_STORE", StoreDynamoDB)),
		BoltPath:          getenvDefault("BOLT_PATH", "escrow.db"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		StrictTransitions: strict,
	}

	switch cfg.PaymentStore {
	case StoreDynamoDB, StoreBolt:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required for the postgres store")
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.PaymentStore)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
