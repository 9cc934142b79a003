// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the draem site server.

draem serves a personal dream journal: every URL maps to a template by
category and slug, some pages carry a "latest polls" sidebar read from
the database, and the site publishes an Atom feed and an XML data file
for its timeline.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:draem.db go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..." -templates /srv/draem/templates

A .env file in the working directory is read too.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TEMPLATE_DIR (-templates): template root (default: site/templates)
  - DEFAULT_CONTENT_TYPE (-content-type): default page Content-Type
  - SITE_NAME (-site-name): site name for templates

# Architecture

  - handlers: page views built from a Page descriptor
  - router: declarative route table on a Go 1.22+ ServeMux
  - templates: template resolution with an explicit found / not found result
  - db: driver selection, schema, latest-polls query
  - middleware: request logging, CORS
  - models: the Poll type
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
