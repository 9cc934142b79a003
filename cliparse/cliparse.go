package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               int
	DatabaseURL        string
	DatabaseType       string
	TemplateDir        string
	DefaultContentType string
	SiteName           string
	EnvFile            string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("draem", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Site config
	fs.StringVar(&cfg.TemplateDir, "templates", "", "Template directory")
	fs.StringVar(&cfg.DefaultContentType, "content-type", "", "Default response content type")
	fs.StringVar(&cfg.SiteName, "site-name", "", "Site name shown in templates")

	fs.StringVar(&cfg.EnvFile, "env", ".env", "dotenv file to load (ignored if missing)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values from the dotenv file never override the real environment
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	cfg.TemplateDir = withEnvDefault(cfg.TemplateDir, "TEMPLATE_DIR", "site/templates")
	cfg.DefaultContentType = withEnvDefault(cfg.DefaultContentType, "DEFAULT_CONTENT_TYPE", "text/html; charset=utf-8")
	cfg.SiteName = withEnvDefault(cfg.SiteName, "SITE_NAME", "draem")

	return cfg, nil
}

func withEnvDefault(value, key, def string) string {
	if value != "" {
		return value
	}
	if env := os.Getenv(key); env != "" {
		return env
	}
	return def
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
