// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP views for the dream journal.

# Dependencies

PageHandler receives its collaborators explicitly:

	pages := handlers.NewPageHandler(resolver, pollStore, cfg)

  - Renderer: resolves a template name to a templates.Result
  - PollLister: reads the latest polls for the sidebar

# Pages

A Page value describes a view, and Serve turns it into an http.HandlerFunc:

	mux.HandleFunc("GET /about", pages.Serve(handlers.Page{Template: "about.html", Sidebar: true}))
	mux.HandleFunc("GET /essay/{slug}", pages.Serve(handlers.Entry("essay")))

Slugged pages render <dir>/<slug>.html. Entry categories:

	lucid-dream, post, page, guest-dream, non-lucid-dream,
	open-letter, misc, essay, hypnosis

# Responses

  - template found: 200 with the page content type or the configured default
  - template missing: 404 (404.html when present)
  - sidebar query or template execution failure: 500

TimelineHistory always answers with an empty HTML document for the
timeline widget's history frame.
*/
package handlers
