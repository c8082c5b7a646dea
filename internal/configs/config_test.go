package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "ndjimba", cfg.AppName)
	assert.Equal(t, "8080", cfg.Rest.PORT)
	assert.Equal(t, CatalogSourceMemory, cfg.Catalog.Source)
	assert.Equal(t, BackendDriverMemory, cfg.Backend.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "33658898531", cfg.Auth.SupportWhatsAppNumber)
	assert.False(t, cfg.Auth.EnforcePhoneValidation)
	assert.Zero(t, cfg.Auth.LoginDelay)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.False(t, cfg.UsesPostgres())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("CATALOG_SOURCE", "POSTGRES")
	t.Setenv("DATABASE_URL", "postgres://localhost/ndjimba")
	t.Setenv("AUTH_ENFORCE_PHONE_VALIDATION", "true")
	t.Setenv("AUTH_LOGIN_DELAY", "1500ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ndjimba.ga, ,http://localhost:8081")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
	assert.True(t, cfg.UsesPostgres())
	assert.True(t, cfg.Auth.EnforcePhoneValidation)
	assert.Equal(t, 1500*time.Millisecond, cfg.Auth.LoginDelay)
	assert.Equal(t, []string{"https://ndjimba.ga", "http://localhost:8081"}, cfg.Rest.CORSAllowedOrigins)
}

func TestFromEnv_DriverRequirements(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "missing jwt secret", env: map[string]string{}, want: "JWT_SECRET_KEY"},
		{name: "file catalog without path", env: map[string]string{"JWT_SECRET_KEY": "s", "CATALOG_SOURCE": "file"}, want: "CATALOG_FILE"},
		{name: "http backend without url", env: map[string]string{"JWT_SECRET_KEY": "s", "BACKEND_DRIVER": "http"}, want: "BACKEND_URL"},
		{name: "postgres backend without dsn", env: map[string]string{"JWT_SECRET_KEY": "s", "BACKEND_DRIVER": "postgres"}, want: "DATABASE_URL"},
		{name: "rabbitmq without url", env: map[string]string{"JWT_SECRET_KEY": "s", "RABBITMQ_ENABLED": "true"}, want: "RABBITMQ_URL"},
		{name: "unknown catalog source", env: map[string]string{"JWT_SECRET_KEY": "s", "CATALOG_SOURCE": "s3"}, want: "CATALOG_SOURCE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "twelve")
	t.Setenv("SOME_BOOL", "maybe")
	t.Setenv("SOME_DURATION", "soon")

	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
	assert.True(t, getEnvAsBool("SOME_BOOL", true))
	assert.Equal(t, time.Second, getEnvAsDuration("SOME_DURATION", time.Second))
}
