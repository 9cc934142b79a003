// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - TemplateDir: template root directory (default: site/templates)
  - DefaultContentType: Content-Type for pages without an override
    (default: text/html; charset=utf-8)
  - SiteName: exposed to templates (default: draem)
  - EnvFile: dotenv file (default: .env)

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-templates     Template directory
	-content-type  Default content type
	-site-name     Site name
	-env           dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	TEMPLATE_DIR         → -templates
	DEFAULT_CONTENT_TYPE → -content-type
	SITE_NAME            → -site-name

CLI flags take precedence over environment variables. The dotenv file is
loaded first with github.com/joho/godotenv; it only fills variables that
are not already set, and a missing file is ignored.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is not provided
  - PORT is not a number
  - DATABASE_TYPE is neither sqlite nor postgres
*/
package cliparse
