// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the dream journal.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(resolver, pollStore, cfg)

Pages are declared in a single table of pattern → handlers.Page; every
entry is registered for GET and wrapped in request logging.

# Endpoints

Pages (sidebar = latest polls attached):

	GET /                  index.html
	GET /about             about.html (sidebar)
	GET /contact           contact.html (sidebar)
	GET /{category}/{slug} {category}/{slug}.html (sidebar)
	GET /characters        characters.html
	GET /characters/{slug} characters/{slug}.html
	GET /tags              tags.html
	GET /tags/{slug}       tags/{slug}.html
	GET /categories        categories.html
	GET /categories/{slug} categories/{slug}.html
	GET /timeline          timeline.html

Entry categories: lucid-dream, post, page, guest-dream, non-lucid-dream,
open-letter, misc, essay, hypnosis.

XML (CORS enabled):

	GET /eatme             eatme.xml (sidebar)
	GET /feed              atom.xml (sidebar), application/atom+xml

Fixed responses:

	GET /timeline/history        empty HTML document
	GET /timeline/_history_.html same, at the path the widget requests
	GET /health                  OK

Missing templates and unknown paths answer 404 (404.html when the site
has one); non-GET methods answer 405.
*/
package router
