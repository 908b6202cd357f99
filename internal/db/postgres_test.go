package db

import (
	"testing"
	"time"

	"github.com/yigit/tuition/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.User = "school"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "tuition"
	cfg.Database.SSLMode = "disable"
	cfg.Database.MaxOpenConns = 12
	cfg.Database.MaxIdleConns = 3
	cfg.Database.ConnMaxLifetime = "30m"
	cfg.Database.HealthCheckPeriod = "45s"
	return cfg
}

func TestPoolConfig(t *testing.T) {
	poolConfig, err := PoolConfig(testConfig())
	if err != nil {
		t.Fatalf("PoolConfig() error = %v", err)
	}

	if poolConfig.MaxConns != 12 || poolConfig.MinConns != 3 {
		t.Errorf("conns = %d/%d, want 12/3", poolConfig.MaxConns, poolConfig.MinConns)
	}
	if poolConfig.MaxConnLifetime != 30*time.Minute {
		t.Errorf("MaxConnLifetime = %v, want 30m", poolConfig.MaxConnLifetime)
	}
	if poolConfig.HealthCheckPeriod != 45*time.Second {
		t.Errorf("HealthCheckPeriod = %v, want 45s", poolConfig.HealthCheckPeriod)
	}
	if got := poolConfig.ConnConfig.Host; got != "db.internal" {
		t.Errorf("Host = %q, want db.internal", got)
	}
	if got := poolConfig.ConnConfig.Port; got != 5433 {
		t.Errorf("Port = %d, want 5433", got)
	}
	if poolConfig.BeforeAcquire == nil {
		t.Error("BeforeAcquire hook not installed")
	}
}

func TestPoolConfigRejectsBadDurations(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"lifetime", func(c *config.Config) { c.Database.ConnMaxLifetime = "forever" }},
		{"health check", func(c *config.Config) { c.Database.HealthCheckPeriod = "often" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.modify(cfg)
			if _, err := PoolConfig(cfg); err == nil {
				t.Error("PoolConfig() error = nil, want error")
			}
		})
	}
}
