package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("SESSION_SECRET", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.SessionStore != StoreMemory {
		t.Errorf("expected memory store, got %s", cfg.SessionStore)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected 24h ttl, got %s", cfg.SessionTTL)
	}
	if cfg.CartBackend != CartLocal {
		t.Errorf("expected local cart, got %s", cfg.CartBackend)
	}
	if !cfg.ResetAfterCheckout {
		t.Error("expected reset after checkout by default")
	}
	if cfg.RateLimitPerMinute != 60 {
		t.Errorf("expected 60 sessions per minute, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.TrustProxy {
		t.Error("expected forwarded headers to be ignored by default")
	}
	if cfg.SweepInterval != 5*time.Minute {
		t.Errorf("expected 5m sweep interval, got %s", cfg.SweepInterval)
	}
	if len(cfg.SessionSecret) != 64 {
		t.Errorf("expected a generated development secret, got %q", cfg.SessionSecret)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_STORE", "Badger")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("RESET_AFTER_CHECKOUT", "false")
	t.Setenv("PRICING_STRATEGY", "beverage+menu")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.SessionSecret != "s3cret" {
		t.Errorf("expected secret from env, got %q", cfg.SessionSecret)
	}
	if cfg.SessionStore != StoreBadger {
		t.Errorf("expected badger store, got %s", cfg.SessionStore)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("expected 2h ttl, got %s", cfg.SessionTTL)
	}
	if cfg.ResetAfterCheckout {
		t.Error("expected reset after checkout to be disabled")
	}
	if cfg.PricingStrategy != "beverage+menu" {
		t.Errorf("unexpected pricing strategy %q", cfg.PricingStrategy)
	}
	if !cfg.TrustProxy {
		t.Error("expected TRUST_PROXY from env")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"ProductionWithoutSecret", map[string]string{"ENV": "production", "SESSION_SECRET": ""}},
		{"UnknownStore", map[string]string{"SESSION_STORE": "etcd"}},
		{"UnknownCart", map[string]string{"CART_BACKEND": "paper"}},
		{"StorefrontWithoutURLs", map[string]string{"CART_BACKEND": "storefront"}},
		{"NonPositiveTTL", map[string]string{"SESSION_TTL": "0s"}},
		{"NonPositiveSweep", map[string]string{"SWEEP_INTERVAL": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
