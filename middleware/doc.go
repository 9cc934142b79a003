// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /about", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Each request carries an ID from github.com/google/uuid,
returned in the X-Request-ID header; an inbound X-Request-ID is reused.

# CORS Middleware

The XML endpoints (/eatme, /feed) are fetched by feed readers and the
timeline widget from other origins:

	mux.Handle("GET /feed", middleware.CORS(feedHandler))

Allows GET and OPTIONS; preflight requests are answered directly.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
