package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "local")
	t.Setenv("DB_DSN", "root:root@tcp(localhost:3306)/user_management")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "8080", cfg.HttpServer.Port)
	assert.Equal(t, 4*time.Second, cfg.HttpServer.Timeout)
	assert.Equal(t, "root:root@tcp(localhost:3306)/user_management", cfg.Database.DSN)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Email.Enabled)
	assert.False(t, cfg.Email.QueueEnabled)
	assert.Equal(t, "invitation.html", cfg.Email.Templates.Invitation)
}

func TestLoad_MailSettings(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("SMTP_USERNAME", "mailer")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("SMTP_FROM", "noreply@example.com")
	t.Setenv("EMAIL_DOCS_URL", "https://docs.example.com")
	t.Setenv("HTTP_CORS_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mailer", cfg.SMTP.Username)
	assert.Equal(t, "secret", cfg.SMTP.Pass)
	assert.Equal(t, "noreply@example.com", cfg.SMTP.From)
	assert.Equal(t, "https://docs.example.com", cfg.Email.DocsURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HttpServer.CORSOrigins)
}

func TestLoad_MissingEnv(t *testing.T) {
	t.Setenv("ENV", "local")
	require.NoError(t, os.Unsetenv("ENV"))

	_, err := Load()
	assert.Error(t, err)
}
