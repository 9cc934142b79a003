// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/draem/cliparse"
	"github.com/danielhkuo/draem/models"
	"github.com/danielhkuo/draem/templates"
)

// Content types
const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeAtom = "application/atom+xml"
)

// NotFoundTemplate is rendered for missing pages when it exists
const NotFoundTemplate = "404.html"

// timelineHistoryStub is the empty frame the SIMILE Exhibit timeline
// widget loads as _history_.html
const timelineHistoryStub = "<html><body></body></html>"

// EntryCategories are the content groupings served at /<category>/{slug}.
// Each maps to the template directory of the same name.
var EntryCategories = []string{
	"lucid-dream",
	"post",
	"page",
	"guest-dream",
	"non-lucid-dream",
	"open-letter",
	"misc",
	"essay",
	"hypnosis",
}

// Renderer resolves a template by name and renders it
type Renderer interface {
	Render(name string, data any) (templates.Result, error)
}

// PollLister reads the newest polls for the sidebar
type PollLister interface {
	LatestPolls(ctx context.Context, limit int) ([]models.Poll, error)
}

// Page describes one view: which template it renders and what context it needs.
type Page struct {
	// Template is the template name, or the template directory when Slugged
	Template string
	// Slugged pages read {slug} and render <Template>/<slug>.html
	Slugged bool
	// Sidebar attaches the latest polls
	Sidebar bool
	// ContentType overrides the configured default
	ContentType string
}

// Entry is a slugged page with the sidebar, as used by every entry category
func Entry(category string) Page {
	return Page{Template: category, Slugged: true, Sidebar: true}
}

// TemplateName returns the template the page renders for slug
func (p Page) TemplateName(slug string) string {
	if !p.Slugged {
		return p.Template
	}
	return p.Template + "/" + slug + ".html"
}

// PageContext is the data every template receives
type PageContext struct {
	SiteName    string
	Path        string
	Category    string
	Slug        string
	LatestPolls []models.Poll
	Now         time.Time
}

type PageHandler struct {
	renderer Renderer
	polls    PollLister
	cfg      cliparse.Config
}

func NewPageHandler(renderer Renderer, polls PollLister, cfg cliparse.Config) *PageHandler {
	return &PageHandler{renderer: renderer, polls: polls, cfg: cfg}
}

// Serve returns the handler for page
func (h *PageHandler) Serve(page Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageContext{
			SiteName: h.cfg.SiteName,
			Path:     r.URL.Path,
			Now:      time.Now(),
		}
		if page.Slugged {
			data.Category = page.Template
			data.Slug = r.PathValue("slug")
		}

		if page.Sidebar {
			polls, err := h.polls.LatestPolls(r.Context(), models.SidebarLimit)
			if err != nil {
				slog.Error("failed to query latest polls", "error", err, "path", r.URL.Path)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			data.LatestPolls = polls
		}

		name := page.TemplateName(data.Slug)
		res, err := h.renderer.Render(name, data)
		if err != nil {
			slog.Error("failed to render template", "template", name, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if !res.Found {
			slog.Info("template not found", "template", name, "path", r.URL.Path)
			h.NotFound(w, r)
			return
		}

		contentType := page.ContentType
		if contentType == "" {
			contentType = h.cfg.DefaultContentType
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(res.Body)
	}
}

// NotFound writes a 404, using 404.html when the site provides one
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	res, err := h.renderer.Render(NotFoundTemplate, PageContext{
		SiteName: h.cfg.SiteName,
		Path:     r.URL.Path,
		Now:      time.Now(),
	})
	if err != nil {
		slog.Error("failed to render not found page", "error", err)
	}
	if err != nil || !res.Found {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", ContentTypeHTML)
	w.WriteHeader(http.StatusNotFound)
	w.Write(res.Body)
}

// TimelineHistory handles GET /timeline/history
func (h *PageHandler) TimelineHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", ContentTypeHTML)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(timelineHistoryStub))
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
