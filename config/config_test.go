package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 12*time.Hour, cfg.Cart.TTL)
	assert.Equal(t, 5*time.Minute, cfg.ReportCache.TTL)
}

func TestLoadReadsReportCacheTTL(t *testing.T) {
	t.Setenv("REPORT_CACHE_TTL", "90s")

	cfg := Load()

	assert.Equal(t, 90*time.Second, cfg.ReportCache.TTL)
}

func TestLoadIgnoresMalformedDuration(t *testing.T) {
	t.Setenv("REPORT_CACHE_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 5*time.Minute, cfg.ReportCache.TTL)
}
