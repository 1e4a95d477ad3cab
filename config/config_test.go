package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "limited-api", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "limited_app", cfg.DBName)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.CORSOrigins())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "limited_test")
	t.Setenv("JWT_TOKEN_TTL", "24h")
	t.Setenv("MONGO_MAX_POOL", "25")
	t.Setenv("HTTP_LOG_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "limited_test", cfg.DBName)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, uint64(25), cfg.MongoMaxPool)
	assert.True(t, cfg.HTTPLogEnabled)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("JWT_TOKEN_TTL", "not-a-duration")
	t.Setenv("MONGO_MAX_POOL", "lots")

	cfg := Load()

	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
	assert.Equal(t, uint64(100), cfg.MongoMaxPool)
}

func TestCORSOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty means allow all", raw: "", want: []string{}},
		{name: "single origin", raw: "https://app.limited.vc", want: []string{"https://app.limited.vc"}},
		{
			name: "trims whitespace and drops empties",
			raw:  " https://app.limited.vc , https://admin.limited.vc ,",
			want: []string{"https://app.limited.vc", "https://admin.limited.vc"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{CORSAllowedOrigins: tt.raw}
			assert.Equal(t, tt.want, c.CORSOrigins())
		})
	}
}
