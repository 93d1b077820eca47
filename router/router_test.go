// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pathbuilder/config"
	"github.com/danielhkuo/pathbuilder/recalc"
	"github.com/danielhkuo/pathbuilder/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	policy, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	driver, err := recalc.New(conn, policy)
	if err != nil {
		t.Fatalf("recalc.New() error = %v", err)
	}

	return NewRouter(conn, cfg, policy, driver)
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "pathbuilder API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// Test that routes respond (handler is invoked)
	// Note: handlers may return 4xx/5xx without data or auth, which is valid
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"POST", "/score"},
		{"GET", "/meta/provinces"},
		{"GET", "/meta/ethnicities"},
		{"GET", "/meta/jobs"},
		{"GET", "/jobs/search"},
		{"POST", "/admin/recalculate"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// A 405 would mean the route/method pair is not registered
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s not registered", tc.method, tc.path)
			}
		})
	}
}

func TestMethodRouting(t *testing.T) {
	mux := newTestRouter(t)

	// Wrong methods should be rejected by the Go 1.22 method router.
	// (GET everywhere falls through to the "GET /" root handler, so only
	// non-GET methods can demonstrate a 405 here.)
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/score"},
		{"POST", "/meta/provinces"},
		{"PUT", "/admin/recalculate"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}
