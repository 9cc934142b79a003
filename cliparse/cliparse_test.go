// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("DATABASE_TYPE", "sqlite")
	t.Setenv("TEMPLATE_DIR", "/srv/draem/templates")

	cfg, err := ParseFlags([]string{"-env", noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.TemplateDir != "/srv/draem/templates" {
		t.Errorf("expected template dir from env, got %q", cfg.TemplateDir)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SITE_NAME", "from-env")

	cfg, err := ParseFlags([]string{"-p", "8081", "-d", "file:test.db", "-site-name", "from-cli", "-env", noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8081 {
		t.Errorf("CLI should override env: expected 8081, got %d", cfg.Port)
	}
	if cfg.SiteName != "from-cli" {
		t.Errorf("CLI should override env: expected from-cli, got %q", cfg.SiteName)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("TEMPLATE_DIR", "")
	t.Setenv("DEFAULT_CONTENT_TYPE", "")
	t.Setenv("SITE_NAME", "")

	cfg, err := ParseFlags([]string{"-d", "file:test.db", "-env", noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.TemplateDir != "site/templates" {
		t.Errorf("expected default template dir, got %q", cfg.TemplateDir)
	}
	if cfg.DefaultContentType != "text/html; charset=utf-8" {
		t.Errorf("unexpected default content type %q", cfg.DefaultContentType)
	}
	if cfg.SiteName != "draem" {
		t.Errorf("unexpected default site name %q", cfg.SiteName)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database URL", map[string]string{"DATABASE_URL": ""}, nil},
		{"bad PORT", map[string]string{"PORT": "eighty"}, []string{"-d", "file:test.db"}},
		{"unknown database type", nil, []string{"-d", "file:test.db", "-t", "mysql"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("DATABASE_URL", "")
			t.Setenv("DATABASE_TYPE", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			args := append([]string{"-env", noEnvFile(t)}, tc.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	// Registered with t.Setenv so the values godotenv sets are cleaned up
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SITE_NAME", "from-real-env")
	os.Unsetenv("DATABASE_URL")

	path := filepath.Join(t.TempDir(), ".env")
	content := "DATABASE_URL=postgres://draem@localhost/draem\nDATABASE_TYPE=postgres\nSITE_NAME=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DATABASE_TYPE", "")
	os.Unsetenv("DATABASE_TYPE")

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "postgres://draem@localhost/draem" {
		t.Errorf("expected database URL from env file, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected database type from env file, got %q", cfg.DatabaseType)
	}
	// Real environment wins over the file
	if cfg.SiteName != "from-real-env" {
		t.Errorf("expected real env to win, got %q", cfg.SiteName)
	}
}
