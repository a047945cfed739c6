package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadDefaultsFromEnvironment(t *testing.T) {
	cfg, err := Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, int32(5), cfg.PostgresMaxConn)
	assert.Equal(t, int32(1), cfg.PostgresMinConn)
	assert.True(t, cfg.PostgresAutoMigrate)
	assert.Equal(t, "02/01/2006 15:04", cfg.DateLayout)
	assert.Equal(t, "UTC", cfg.DateTimezone)
	assert.Equal(t, 24*time.Hour, cfg.CacheAnsweredTTL)
	assert.Equal(t, time.Hour, cfg.ReminderInterval)
	assert.Equal(t, "question-notifier", cfg.KafkaGroupID)
	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.EventsEnabled())
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadOverridesFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("REDIS_URL", "localhost:6379")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("REMINDER_AGE", "2h")

	cfg, err := Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 2*time.Hour, cfg.ReminderAge)
	assert.True(t, cfg.CacheEnabled())
	assert.True(t, cfg.EventsEnabled())
	assert.True(t, cfg.AuthEnabled())
}

func TestLoadFromDotenvFile(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("HTTP_PORT")
		os.Unsetenv("DATE_LAYOUT")
	})
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=7070\nDATE_LAYOUT=2006-01-02\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.HTTPPort)
	assert.Equal(t, "2006-01-02", cfg.DateLayout)
}

func TestLoadRejectsInvalidTimezone(t *testing.T) {
	t.Setenv("DATE_TIMEZONE", "Mars/Olympus")

	_, err := Load(missingFile(t))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPPort:         8080,
			PostgresURL:      "postgres://localhost/db",
			PostgresMaxConn:  5,
			PostgresMinConn:  1,
			DateLayout:       time.RFC3339,
			DateTimezone:     "UTC",
			KafkaTopic:       "question-events",
			ReminderInterval: time.Minute,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"PortOutOfRange", func(c *Config) { c.HTTPPort = 70000 }, true},
		{"MissingPostgresURL", func(c *Config) { c.PostgresURL = "" }, true},
		{"MinAboveMax", func(c *Config) { c.PostgresMinConn = 10 }, true},
		{"EmptyLayout", func(c *Config) { c.DateLayout = "" }, true},
		{"BrokersWithoutTopic", func(c *Config) {
			c.KafkaBrokers = []string{"kafka:9092"}
			c.KafkaTopic = ""
		}, true},
		{"ZeroReminderInterval", func(c *Config) { c.ReminderInterval = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
