package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadClampsMetricsSampleInterval(t *testing.T) {
	t.Setenv("DATABASE_URL", "host=localhost dbname=app")
	t.Setenv("JWT_SECRET", "test-secret")

	for _, value := range []string{"0", "-5"} {
		t.Setenv("METRICS_SAMPLE_SECONDS", value)
		cfg := Load()
		assert.Equal(t, 1, cfg.MetricsSampleSeconds, "METRICS_SAMPLE_SECONDS=%s", value)
	}

	t.Setenv("METRICS_SAMPLE_SECONDS", "30")
	assert.Equal(t, 30, Load().MetricsSampleSeconds)
}

func TestResolveDatabaseURLNormalizesPostgresURI(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://app:pw@db.internal:6432/enertek?sslmode=require")

	cfg := Load()
	assert.Equal(t,
		"host=db.internal port=6432 user=app password=pw dbname=enertek sslmode=require",
		cfg.DatabaseURL)
}
