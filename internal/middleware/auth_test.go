// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"districtcms/internal/session"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithSession(data *session.Data) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	if data != nil {
		r = r.WithContext(context.WithValue(r.Context(), SessionKey, data))
	}
	return r
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth(okHandler())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestWithSession(nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no session: status = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestWithSession(&session.Data{Role: "editor"}))
	if w.Code != http.StatusOK {
		t.Errorf("with session: status = %d, want 200", w.Code)
	}
}

func TestRequire2FA(t *testing.T) {
	h := Require2FA(okHandler())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestWithSession(&session.Data{Role: "editor"}))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("2FA incomplete: status = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestWithSession(&session.Data{Role: "editor", TwoFADone: true}))
	if w.Code != http.StatusOK {
		t.Errorf("2FA complete: status = %d, want 200", w.Code)
	}
}

func TestRequireEditor(t *testing.T) {
	h := RequireEditor(okHandler())

	tests := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"editor", http.StatusOK},
		{"none", http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestWithSession(&session.Data{Role: tt.role, TwoFADone: true}))
		if w.Code != tt.want {
			t.Errorf("role %q: status = %d, want %d", tt.role, w.Code, tt.want)
		}
	}
}

func TestRequireAdmin(t *testing.T) {
	h := RequireAdmin(okHandler())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestWithSession(&session.Data{Role: "editor", TwoFADone: true}))
	if w.Code != http.StatusForbidden {
		t.Errorf("editor: status = %d, want 403", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestWithSession(&session.Data{Role: "admin", TwoFADone: true}))
	if w.Code != http.StatusOK {
		t.Errorf("admin: status = %d, want 200", w.Code)
	}
}
