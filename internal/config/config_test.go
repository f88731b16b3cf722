package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseViper() *viper.Viper {
	v := viper.New()
	v.Set("DB_DSN", "postgres://localhost/dash")
	v.Set("JWT_ACCESS_SECRET", "secret")
	v.Set("ANALYTICS_API_URL", "http://analytics.local/")
	v.Set("TICKET_API_URL", "http://tickets.local")
	return v
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := fromViper(baseViper())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 7090, cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, int64(10<<20), cfg.HTTP.AttachmentMaxBytes)
	assert.Equal(t, 15*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.Dashboard.CacheTTL)
	assert.Equal(t, "http://analytics.local", cfg.Upstream.AnalyticsURL)
}

func TestFromViperOverrides(t *testing.T) {
	v := baseViper()
	v.Set("HTTP_PORT", 9000)
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	v.Set("UPSTREAM_TIMEOUT", "3s")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
}

func TestFromViperRequiresUpstreams(t *testing.T) {
	v := baseViper()
	v.Set("TICKET_API_URL", "")

	_, err := fromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TICKET_API_URL")
}
