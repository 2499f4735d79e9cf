package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInitResolvesEnvPlaceholders(t *testing.T) {
	t.Setenv("SOLAR_TEST_PORT", "9090")
	path := writeProperties(t, `
app:
  server:
    port: ${SOLAR_TEST_PORT:8080}
    host: ${SOLAR_TEST_UNSET_HOST:0.0.0.0}
  name: solar-map
  cache:
    ttl: 15m
    enabled: true
`)

	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"app.server.port", "9090"},
		{"app.server.host", "0.0.0.0"},
		{"app.name", "solar-map"},
	}
	for _, tt := range tests {
		if got := GetString(tt.key); got != tt.want {
			t.Errorf("GetString(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}

	if got := GetInt("app.server.port"); got != 9090 {
		t.Errorf("GetInt port = %d", got)
	}
	if got := GetDuration("app.cache.ttl"); got != 15*time.Minute {
		t.Errorf("GetDuration ttl = %v", got)
	}
	if !GetBool("app.cache.enabled") {
		t.Error("expected cache enabled")
	}
}

func TestDefaults(t *testing.T) {
	path := writeProperties(t, "app:\n  blank: \"\"\n")
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := GetStringOrDefault("app.blank", "fallback"); got != "fallback" {
		t.Errorf("got %q", got)
	}
	if got := GetIntOrDefault("app.missing", 42); got != 42 {
		t.Errorf("got %d", got)
	}

	Set("app.missing", 7)
	if got := GetIntOrDefault("app.missing", 42); got != 7 {
		t.Errorf("after Set got %d", got)
	}
}

func TestInitMissingFile(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error")
	}
}
