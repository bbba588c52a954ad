package config

import (
	"errors"
	"testing"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "PAYMENT_STORE", "BOLT_PATH", "DATABASE_URL", "JWT_SECRET", "ESCROW_STRICT_TRANSITIONS"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.PaymentStore != StoreDynamoDB || cfg.BoltPath != "escrow.db" || !cfg.StrictTransitions {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PAYMENT_STORE", "BOLT")
	t.Setenv("BOLT_PATH", "/tmp/x.db")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ESCROW_STRICT_TRANSITIONS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 || cfg.PaymentStore != StoreBolt || cfg.BoltPath != "/tmp/x.db" || cfg.JWTSecret != "s3cret" || cfg.StrictTransitions {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "http")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bad strict flag", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ESCROW_STRICT_TRANSITIONS", "maybe")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown store", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PAYMENT_STORE", "redis")
		if _, err := Load(); !errors.Is(err, ErrUnknownStore) {
			t.Fatalf("expected ErrUnknownStore, got %v", err)
		}
	})

	t.Run("postgres without url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PAYMENT_STORE", "postgres")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
