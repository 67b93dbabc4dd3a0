package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "https://api.resend.com", cfg.ResendBaseURL)
		assert.Equal(t, "Nikhil Electrical <onboarding@resend.dev>", cfg.EmailFrom)
		assert.Equal(t, 15*time.Second, cfg.NotifyTimeout)
		assert.Empty(t, cfg.JWKSURL())
	})

	t.Run("Should parse lists, durations and trim URLs", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", " SQLite ")
		t.Setenv("ADMIN_USER_IDS", "a,b")
		t.Setenv("NOTIFY_TIMEOUT", "3s")
		t.Setenv("SUPABASE_URL", "https://xyz.supabase.co/")
		t.Setenv("RESEND_BASE_URL", "http://localhost:9000/")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", cfg.StoreDriver)
		assert.Equal(t, []string{"a", "b"}, cfg.AdminUserIDs)
		assert.Equal(t, 3*time.Second, cfg.NotifyTimeout)
		assert.Equal(t, "https://xyz.supabase.co/auth/v1/.well-known/jwks.json", cfg.JWKSURL())
		assert.Equal(t, "http://localhost:9000", cfg.ResendBaseURL)
	})

	t.Run("Should reject an unknown store driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mysql")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("Should reject a malformed duration", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")
		t.Setenv("NOTIFY_TIMEOUT", "soon")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
