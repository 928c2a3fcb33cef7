package config_test

import (
	"testing"
	"time"

	cfg "github.com/weblarek/storefront/config"
)

// TestLoadWithPrefix_Defaults — проверка значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("LAREK_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP.GracefulTimeout: want 5s, got %v", c.HTTP.GracefulTimeout)
	}

	// API
	if c.API.BaseURL != "http://localhost:9090/api/weblarek" {
		t.Fatalf("API.BaseURL default wrong: %q", c.API.BaseURL)
	}
	if c.API.CDNURL != "http://localhost:9090/content/weblarek" {
		t.Fatalf("API.CDNURL default wrong: %q", c.API.CDNURL)
	}
	if c.API.Timeout != 10*time.Second {
		t.Fatalf("API.Timeout: want 10s, got %v", c.API.Timeout)
	}

	// Storage
	if c.Storage.Dir != "./data" {
		t.Fatalf("Storage.Dir: want ./data, got %q", c.Storage.Dir)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "storefront" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}
}

// TestLoadWithPrefix_EnvOverrides — переменные окружения важнее дефолтов.
func TestLoadWithPrefix_EnvOverrides(t *testing.T) {
	t.Setenv("LAREK_TEST_ENV_HTTP_ADDR", ":9999")
	t.Setenv("LAREK_TEST_ENV_API_BASE_URL", "http://shop.local/api")
	t.Setenv("LAREK_TEST_ENV_STORAGE_DIR", "/var/lib/storefront")
	t.Setenv("LAREK_TEST_ENV_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix("LAREK_TEST_ENV")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" {
		t.Fatalf("HTTP.Addr: want :9999, got %q", c.HTTP.Addr)
	}
	if c.API.BaseURL != "http://shop.local/api" {
		t.Fatalf("API.BaseURL: got %q", c.API.BaseURL)
	}
	if c.Storage.Dir != "/var/lib/storefront" {
		t.Fatalf("Storage.Dir: got %q", c.Storage.Dir)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want true")
	}
}
