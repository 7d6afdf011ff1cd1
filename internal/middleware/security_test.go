// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecureHeaders(t *testing.T) {
	h := SecureHeaders(okHandler())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	checks := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
	}
	for name, want := range checks {
		if got := w.Header().Get(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}

	// Public API responses stay cacheable.
	if got := w.Header().Get("Cache-Control"); got != "" {
		t.Errorf("public Cache-Control = %q, want unset", got)
	}
}

func TestSecureHeadersNoStoreForAdmin(t *testing.T) {
	h := SecureHeaders(okHandler())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil))

	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("admin Cache-Control = %q, want no-store", got)
	}
}
