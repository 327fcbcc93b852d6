package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "STRAPI_URL", "STRAPI_ADMIN_URL", "STRAPI_TIMEOUT_SECONDS", "STRAPI_PRODUCTS_COLLECTION", "SESSION_SECRET"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev_fallback_secret", cfg.SessionSecret)
	assert.False(t, cfg.HasSessionSecret())
	assert.False(t, cfg.CMS.Enabled())
	assert.Equal(t, "products", cfg.CMS.ProductsCollection)
	assert.Equal(t, 8*time.Second, cfg.CMS.Timeout)
	assert.Empty(t, cfg.CMS.AdminURL)
}

func TestFromEnv_CMS(t *testing.T) {
	t.Setenv("STRAPI_URL", " http://localhost:1337/ ")
	t.Setenv("STRAPI_ADMIN_URL", "")
	t.Setenv("STRAPI_PRODUCTS_COLLECTION", "/items/")
	t.Setenv("STRAPI_TIMEOUT_SECONDS", "3")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.CMS.Enabled())
	assert.Equal(t, "http://localhost:1337", cfg.CMS.BaseURL)
	assert.Equal(t, "http://localhost:1337/admin", cfg.CMS.AdminURL)
	assert.Equal(t, "items", cfg.CMS.ProductsCollection)
	assert.Equal(t, 3*time.Second, cfg.CMS.Timeout)
}

func TestFromEnv_BadTimeout(t *testing.T) {
	t.Setenv("STRAPI_TIMEOUT_SECONDS", "soon")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestHasSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cr3t-from-env")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.HasSessionSecret())

	assert.False(t, Config{}.HasSessionSecret())
}
