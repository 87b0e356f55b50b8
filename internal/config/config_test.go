package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiresCredentials(t *testing.T) {
	cfg := Config{DBType: "postgres", DBName: "catalogo"}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingDBCredentials)

	cfg.DBUser = "app"
	assert.ErrorIs(t, cfg.Validate(), ErrMissingDBCredentials)

	cfg.DBPassword = "s3cret"
	assert.NoError(t, cfg.Validate())
}

func TestValidateSqliteNeedsNoCredentials(t *testing.T) {
	cfg := Config{DBType: "sqlite"}
	assert.NoError(t, cfg.Validate())
}

func TestValidateAdminTokenInProduction(t *testing.T) {
	cfg := Config{
		DBType:     "postgres",
		DBName:     "catalogo",
		DBUser:     "app",
		DBPassword: "s3cret",
	}

	cfg.Environment = "production"
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAdminToken)

	cfg.AdminAPIToken = "token"
	assert.NoError(t, cfg.Validate())

	// development runs without a token, the server only logs a warning
	cfg.Environment = "development"
	cfg.AdminAPIToken = ""
	assert.NoError(t, cfg.Validate())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "sqlite")
	t.Setenv("DATABASE_NAME", "catalogo_test.db")
	t.Setenv("PORT", "9090")
	t.Setenv("REVIEW_RATE_PER_MINUTE", "12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 12.0, cfg.RateLimit.ReviewRatePerMinute)
	assert.False(t, cfg.RateLimit.Enabled())
	assert.NotEmpty(t, cfg.CORSAllowedOrigins)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a , b ,"))
	assert.Empty(t, splitList("  "))
}
