// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/draem/cliparse"
	"github.com/danielhkuo/draem/handlers"
	"github.com/danielhkuo/draem/middleware"
)

type route struct {
	pattern string
	page    handlers.Page
	// crossOrigin routes also answer CORS preflight
	crossOrigin bool
}

// routes lists every template-backed page
func routes() []route {
	table := []route{
		{pattern: "/{$}", page: handlers.Page{Template: "index.html"}},
		{pattern: "/about", page: handlers.Page{Template: "about.html", Sidebar: true}},
		{pattern: "/contact", page: handlers.Page{Template: "contact.html", Sidebar: true}},

		{pattern: "/characters", page: handlers.Page{Template: "characters.html"}},
		{pattern: "/characters/{slug}", page: handlers.Page{Template: "characters", Slugged: true}},
		{pattern: "/tags", page: handlers.Page{Template: "tags.html"}},
		{pattern: "/tags/{slug}", page: handlers.Page{Template: "tags", Slugged: true}},
		{pattern: "/categories", page: handlers.Page{Template: "categories.html"}},
		{pattern: "/categories/{slug}", page: handlers.Page{Template: "categories", Slugged: true}},

		{pattern: "/timeline", page: handlers.Page{Template: "timeline.html"}},

		{pattern: "/eatme", page: handlers.Page{Template: "eatme.xml", Sidebar: true}, crossOrigin: true},
		{pattern: "/feed", page: handlers.Page{Template: "atom.xml", Sidebar: true, ContentType: handlers.ContentTypeAtom}, crossOrigin: true},
	}

	for _, category := range handlers.EntryCategories {
		table = append(table, route{pattern: "/" + category + "/{slug}", page: handlers.Entry(category)})
	}

	return table
}

func NewRouter(renderer handlers.Renderer, polls handlers.PollLister, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(renderer, polls, cfg)

	// Health check
	mux.HandleFunc("GET /health", handlers.Health)

	// Template-backed pages
	for _, rt := range routes() {
		h := middleware.WithLogging(pageHandler.Serve(rt.page))
		if rt.crossOrigin {
			cors := middleware.CORS(h)
			mux.Handle("GET "+rt.pattern, cors)
			mux.Handle("OPTIONS "+rt.pattern, cors)
			continue
		}
		mux.HandleFunc("GET "+rt.pattern, h)
	}

	// Timeline widget history frame
	mux.HandleFunc("GET /timeline/history", middleware.WithLogging(pageHandler.TimelineHistory))
	mux.HandleFunc("GET /timeline/_history_.html", middleware.WithLogging(pageHandler.TimelineHistory))

	// Anything else renders the site's 404 page
	mux.HandleFunc("GET /", middleware.WithLogging(pageHandler.NotFound))

	return mux
}
