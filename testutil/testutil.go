// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/danielhkuo/draem/cliparse"
	"github.com/danielhkuo/draem/db"
	"github.com/danielhkuo/draem/models"
	"github.com/danielhkuo/draem/templates"
)

// TestDBURL is an in-memory SQLite database, private to each connection pool
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               8080,
		DatabaseURL:        TestDBURL,
		DatabaseType:       db.TypeSQLite,
		TemplateDir:        "site/templates",
		DefaultContentType: "text/html; charset=utf-8",
		SiteName:           "draem-test",
	}
}

// sidebar renders the latest polls as [id:question]
const sidebar = `{{range .LatestPolls}}[{{.ID}}:{{.Question}}]{{end}}`

// EntryTemplate is the body of every <category>/first.html in SiteFS
const EntryTemplate = `<article>{{.Category}}/{{.Slug}}</article>` + sidebar

// SiteFS returns a small template tree covering every route.
// Each entry category has a "first" entry; "missing" never exists.
func SiteFS(categories []string) fstest.MapFS {
	fsys := fstest.MapFS{
		"partials/header.html":  {Data: []byte(`{{define "header"}}<header>{{.SiteName}}</header>{{end}}`)},
		"index.html":            {Data: []byte(`{{template "header" .}}<main>index</main>`)},
		"about.html":            {Data: []byte(`<main>about</main>` + sidebar)},
		"contact.html":          {Data: []byte(`<main>contact</main>` + sidebar)},
		"characters.html":       {Data: []byte(`<main>characters</main>`)},
		"characters/ana.html":   {Data: []byte(`<main>{{.Category}}:{{.Slug}}</main>`)},
		"tags.html":             {Data: []byte(`<main>tags</main>`)},
		"tags/flying.html":      {Data: []byte(`<main>{{.Category}}:{{.Slug}}</main>`)},
		"categories.html":       {Data: []byte(`<main>categories</main>`)},
		"categories/lucid.html": {Data: []byte(`<main>{{.Category}}:{{.Slug}}</main>`)},
		"timeline.html":         {Data: []byte(`<main>timeline{{len .LatestPolls}}</main>`)},
		"eatme.xml":             {Data: []byte(`<?xml version="1.0"?><items>{{range .LatestPolls}}<item id="{{.ID}}">{{.Question}}</item>{{end}}</items>`)},
		"atom.xml":              {Data: []byte(`<?xml version="1.0" encoding="utf-8"?><feed xmlns="http://www.w3.org/2005/Atom"><title>{{.SiteName}}</title>{{range .LatestPolls}}<entry><id>{{.ID}}</id><updated>{{rfc3339 .PubDate}}</updated></entry>{{end}}</feed>`)},
		"404.html":              {Data: []byte(`<main>no such page: {{.Path}}</main>`)},
	}
	for _, category := range categories {
		fsys[category+"/first.html"] = &fstest.MapFile{Data: []byte(EntryTemplate)}
	}
	return fsys
}

// CreateTestPoll inserts a poll the way the external admin tool would
func CreateTestPoll(t *testing.T, conn *sql.DB, id int64, question string, pubDate time.Time) models.Poll {
	t.Helper()

	pubDate = pubDate.UTC()
	_, err := conn.Exec(`
		INSERT INTO poll (id, question, pub_date)
		VALUES ($1, $2, $3)
	`, id, question, pubDate)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return models.Poll{ID: id, Question: question, PubDate: pubDate}
}

// RecordingRenderer wraps a templates.Resolver and remembers every name it was asked for
type RecordingRenderer struct {
	resolver *templates.Resolver

	mu    sync.Mutex
	names []string
}

func NewRecordingRenderer(resolver *templates.Resolver) *RecordingRenderer {
	return &RecordingRenderer{resolver: resolver}
}

func (r *RecordingRenderer) Render(name string, data any) (templates.Result, error) {
	r.mu.Lock()
	r.names = append(r.names, name)
	r.mu.Unlock()
	return r.resolver.Render(name, data)
}

// Names returns the template names requested so far
func (r *RecordingRenderer) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...)
}

// FailingPolls is a PollLister whose store is down
type FailingPolls struct {
	Err error
}

func (f FailingPolls) LatestPolls(ctx context.Context, limit int) ([]models.Poll, error) {
	return nil, f.Err
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContentType checks the Content-Type header
func AssertContentType(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	if got := w.Header().Get("Content-Type"); got != expected {
		t.Errorf("Expected Content-Type '%s', got '%s'", expected, got)
	}
}
