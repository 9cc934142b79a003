// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestWithLogging(t *testing.T) {
	// Create a simple handler that returns OK
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<p>dream</p>"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/post/flying", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "<p>dream</p>" {
		t.Errorf("Expected body '<p>dream</p>', got '%s'", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	// Logging must not interfere with status codes or bodies
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "<html></html>"},
		{"NotFound", http.StatusNotFound, "404 page not found"},
		{"InternalError", http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("GET", "/essay/anything", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestWithLogging_RequestID(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	t.Run("generates an ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		id := w.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("Expected a UUID request ID, got '%s': %v", id, err)
		}
	})

	t.Run("IDs differ between requests", func(t *testing.T) {
		w1 := httptest.NewRecorder()
		w2 := httptest.NewRecorder()
		handler(w1, httptest.NewRequest("GET", "/", nil))
		handler(w2, httptest.NewRequest("GET", "/", nil))

		if w1.Header().Get(RequestIDHeader) == w2.Header().Get(RequestIDHeader) {
			t.Error("Expected distinct request IDs")
		}
	})

	t.Run("reuses inbound ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, "upstream-42")
		w := httptest.NewRecorder()

		handler(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "upstream-42" {
			t.Errorf("Expected inbound request ID to be echoed, got '%s'", got)
		}
	})
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<feed/>"))
	})

	corsHandler := CORS(nextHandler)

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/feed", nil)
		req.Header.Set("Origin", "https://reader.example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		// Preflight doesn't call next
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://reader.example.com" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
		if w.Header().Get("Access-Control-Allow-Methods") != "GET, OPTIONS" {
			t.Errorf("Unexpected allowed methods '%s'", w.Header().Get("Access-Control-Allow-Methods"))
		}
	})

	t.Run("regular request with origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/eatme", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "<feed/>" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
			t.Error("Expected Access-Control-Allow-Origin to reflect request origin")
		}
	})

	t.Run("request without origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/feed", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{"forwarded single", map[string]string{"X-Forwarded-For": "198.51.100.7"}, "10.0.0.1:1234", "198.51.100.7"},
		{"forwarded chain", map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.1"}, "10.0.0.1:1234", "198.51.100.7"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.9"}, "10.0.0.1:1234", "203.0.113.9"},
		{"forwarded beats real ip", map[string]string{"X-Forwarded-For": "198.51.100.7", "X-Real-IP": "203.0.113.9"}, "10.0.0.1:1234", "198.51.100.7"},
		{"remote with port", nil, "192.0.2.4:5555", "192.0.2.4"},
		{"remote without port", nil, "192.0.2.4", "192.0.2.4"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, got)
			}
		})
	}
}
