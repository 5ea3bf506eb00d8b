package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_SECRET": "0123456789abcdef0123",
		"MONGO_URI":      "mongodb://localhost:27017",
	}))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "agrinova.sid", cfg.Session.CookieName)
	assert.False(t, cfg.Session.CookieSecure)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "agri", cfg.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 5, cfg.Login.MaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Login.Lockout)
	assert.Equal(t, 20*time.Second, cfg.Upstream.Timeout)
	assert.EqualValues(t, 32, cfg.Upstream.MaxInFlight)
	assert.Equal(t, "gemini-1.5-flash", cfg.Upstream.GeminiModel)
	assert.Empty(t, cfg.Upstream.GeminiAPIKey)
	assert.Empty(t, cfg.Tracing.Endpoint)
	assert.Equal(t, "agrinova-api", cfg.Tracing.ServiceName)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_SECRET":        "0123456789abcdef0123",
		"MONGO_URI":             "mongodb://db:27017",
		"ENV":                   "production",
		"SESSION_TTL":           "30m",
		"SESSION_COOKIE_SECURE": "true",
		"CORS_ALLOWED_ORIGINS":  "https://app.example.com",
		"REDIS_ADDR":            "redis:6379",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.True(t, cfg.Session.CookieSecure)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoad_RequiresSecrets(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"MONGO_URI": "mongodb://localhost"}},
		{"missing mongo uri", map[string]string{"SESSION_SECRET": "0123456789abcdef0123"}},
		{"short secret", map[string]string{"SESSION_SECRET": "short", "MONGO_URI": "mongodb://localhost"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(context.Background(), envconfig.MapLookuper(tt.env))
			assert.Error(t, err)
		})
	}
}
