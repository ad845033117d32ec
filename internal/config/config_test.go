package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 8080, cfg.App.Port)

	assert.Equal(t, 300, cfg.Payroll.LocalOffsetMinutes)
	assert.Equal(t, "13", cfg.Payroll.LatePenaltyPerMinute.String())
	assert.Equal(t, "0", cfg.Payroll.AbsencePenaltyPerDay.String())
	assert.Equal(t, "70000", cfg.Payroll.DefaultBaseSalary.String())
	assert.Equal(t, 4, cfg.Payroll.ReconcileWorkers)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-key")
	t.Setenv("PAYROLL_LOCAL_OFFSET_MINUTES", "360")
	t.Setenv("PAYROLL_LATE_PENALTY_PER_MINUTE", "25")
	t.Setenv("PAYROLL_RECONCILE_WORKERS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 360, cfg.Payroll.LocalOffsetMinutes)
	assert.Equal(t, "25", cfg.Payroll.LatePenaltyPerMinute.String())
	assert.Equal(t, 8, cfg.Payroll.ReconcileWorkers)
}

func TestLoadRejectsMissingSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET_KEY", "test-key")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-key")
	t.Setenv("PAYROLL_LATE_PENALTY_PER_MINUTE", "thirteen")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "payroll",
		Password: "pw",
		Name:     "balapan",
		SSLMode:  "require",
	}}
	assert.Equal(t, "postgres://payroll:pw@db.internal:5433/balapan?sslmode=require", cfg.DatabaseURL())
}
