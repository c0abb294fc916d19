package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_DRIVER", "PLANNER_INFLATION_RATE", "PLANNER_SNAPSHOT_TTL", "RATE_LIMIT_MAX_REQUESTS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	// Empty values fail to parse and fall back to defaults, except plain strings.
	if cfg.Planner.InflationRate != 0.06 {
		t.Errorf("expected inflation rate 0.06, got %v", cfg.Planner.InflationRate)
	}
	if cfg.Redis.SnapshotTTL != 30*24*time.Hour {
		t.Errorf("expected snapshot ttl 720h, got %v", cfg.Redis.SnapshotTTL)
	}
	if cfg.RateLimit.MaxRequests != 30 {
		t.Errorf("expected 30 requests per window, got %d", cfg.RateLimit.MaxRequests)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("PLANNER_INFLATION_RATE", "0.045")
	t.Setenv("PLANNER_SNAPSHOT_TTL", "2h")
	t.Setenv("JWT_ISSUER", "identity-service")

	cfg := Load()

	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Planner.InflationRate != 0.045 {
		t.Errorf("expected inflation rate 0.045, got %v", cfg.Planner.InflationRate)
	}
	if cfg.Redis.SnapshotTTL != 2*time.Hour {
		t.Errorf("expected snapshot ttl 2h, got %v", cfg.Redis.SnapshotTTL)
	}
	if cfg.JWT.Issuer != "identity-service" {
		t.Errorf("expected issuer identity-service, got %s", cfg.JWT.Issuer)
	}
}
