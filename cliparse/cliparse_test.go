package cliparse

import (
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("BASE_URL", "")

	cfg, err := ParseFlags([]string{"-admin-token", "secret"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 4280 {
		t.Errorf("Expected default port 4280, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "terminfinder.db" {
		t.Errorf("Expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.BaseURL != "http://localhost:4280" {
		t.Errorf("Expected base URL derived from port, got %q", cfg.BaseURL)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("ADMIN_TOKEN", "env-secret")
	t.Setenv("BASE_URL", "https://termine.example.org")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000 from env, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "/tmp/test.db" {
		t.Errorf("Expected database path from env, got %q", cfg.DatabasePath)
	}
	if cfg.AdminToken != "env-secret" {
		t.Errorf("Expected admin token from env, got %q", cfg.AdminToken)
	}
	if cfg.BaseURL != "https://termine.example.org" {
		t.Errorf("Expected base URL from env, got %q", cfg.BaseURL)
	}
}

func TestParseFlagsFlagBeatsEnv(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "env-secret")

	cfg, err := ParseFlags([]string{"-admin-token", "flag-secret", "-p", "5000"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.AdminToken != "flag-secret" {
		t.Errorf("Expected flag to beat env, got %q", cfg.AdminToken)
	}
	if cfg.Port != 5000 {
		t.Errorf("Expected port 5000, got %d", cfg.Port)
	}
}

func TestParseFlagsMissingAdminToken(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "")

	_, err := ParseFlags(nil)
	if err == nil {
		t.Fatal("Expected error when ADMIN_TOKEN missing")
	}
}

func TestParseFlagsInvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("ADMIN_TOKEN", "secret")

	_, err := ParseFlags(nil)
	if err == nil {
		t.Fatal("Expected error for invalid PORT")
	}
}
