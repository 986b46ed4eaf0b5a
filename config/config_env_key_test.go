package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"bcryptCost":        10,
			"maskLoginFailures": false,
		},
		"events": map[string]any{
			"redis": map[string]any{
				"addr": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "AUTH_MASKLOGINFAILURES", want: "auth.maskLoginFailures"},
		{envKey: "EVENTS_REDIS_ADDR", want: "events.redis.addr"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("BcryptCost = %d, want %d", cfg.Auth.BcryptCost, defaultBcryptCost)
	}
	if cfg.Auth.TokenTTL != 30*24*time.Hour {
		t.Fatalf("TokenTTL = %s, want 720h", cfg.Auth.TokenTTL)
	}
	if cfg.Upload.BucketURL != defaultUploadBucketURL || cfg.Upload.MaxBytes != 5<<20 {
		t.Fatalf("Upload = %+v", cfg.Upload)
	}
	if cfg.Events.Provider != EventsProviderNone || cfg.Events.Stream != defaultEventStream {
		t.Fatalf("Events = %+v", cfg.Events)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:   &AuthConfig{BcryptCost: 12, TokenTTL: time.Hour, MaskLoginFailures: true},
		Upload: &UploadConfig{BucketURL: "file:///tmp/uploads", MaxBytes: 1024},
	}
	cfg.ApplyDefaults()

	if cfg.Auth.BcryptCost != 12 || cfg.Auth.TokenTTL != time.Hour || !cfg.Auth.MaskLoginFailures {
		t.Fatalf("Auth = %+v", cfg.Auth)
	}
	if cfg.Upload.BucketURL != "file:///tmp/uploads" || cfg.Upload.MaxBytes != 1024 {
		t.Fatalf("Upload = %+v", cfg.Upload)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Postgres: &postgres.DBConn{}}
		cfg.SecretKey.Access = "secret"
		cfg.ApplyDefaults()

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.SecretKey.Access = " " }, wantErr: true},
		{name: "missing postgres", mutate: func(c *Config) { c.Postgres = nil }, wantErr: true},
		{name: "redis without addr", mutate: func(c *Config) { c.Events.Provider = "redis" }, wantErr: true},
		{
			name: "redis with addr",
			mutate: func(c *Config) {
				c.Events.Provider = "Redis"
				c.Events.Redis.Addr = "localhost:6379"
			},
		},
		{name: "unknown provider", mutate: func(c *Config) { c.Events.Provider = "kafka" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
