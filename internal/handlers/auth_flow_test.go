// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"

	"districtcms/internal/models"
	"districtcms/internal/session"
)

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM users WHERE email = $1", "login-test@test.local")
	})

	_, err := env.Users.Create("login-test@test.local", "right password", "Login Tester", models.RoleEditor)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	body := `{"email": "login-test@test.local", "password": "wrong password"}`
	w := doJSON(t, env.Auth.Login, http.MethodPost, "/api/admin/auth/login", &body, nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	// Unknown account gets the identical message.
	body = `{"email": "nobody@test.local", "password": "whatever"}`
	w2 := doJSON(t, env.Auth.Login, http.MethodPost, "/api/admin/auth/login", &body, nil, nil)
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w2.Code)
	}
	if w.Body.String() != w2.Body.String() {
		t.Error("bad-password and unknown-account responses differ; they should be indistinguishable")
	}
}

func TestLoginRejectsRoleNone(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM users WHERE email = $1", "norole-login@test.local")
	})

	_, err := env.Users.Create("norole-login@test.local", "some password", "No Role", models.RoleNone)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	body := `{"email": "norole-login@test.local", "password": "some password"}`
	w := doJSON(t, env.Auth.Login, http.MethodPost, "/api/admin/auth/login", &body, nil, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 for role none", w.Code)
	}
}

func TestLoginSignals2FASetup(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM users WHERE email = $1", "setup-login@test.local")
	})

	_, err := env.Users.Create("setup-login@test.local", "some password", "Setup Login", models.RoleEditor)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	body := `{"email": "setup-login@test.local", "password": "some password"}`
	w := doJSON(t, env.Auth.Login, http.MethodPost, "/api/admin/auth/login", &body, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Needs2FASetup bool `json:"needs_2fa_setup"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Needs2FASetup {
		t.Error("fresh account should be told to set up 2FA")
	}

	// The session cookie is set but not 2FA-complete.
	cookies := w.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == session.CookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("login did not set a session cookie")
	}
}

func TestTwoFAVerifyFlow(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM users WHERE email = $1", "2fa-flow@test.local")
	})

	user, err := env.Users.Create("2fa-flow@test.local", "some password", "TwoFA Flow", models.RoleEditor)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	sess := &session.Data{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     "editor",
	}
	cookie := createSessionCookie(t, env, sess)

	// Verify before setup is a 400.
	body := `{"code": "000000"}`
	w := doJSON(t, env.Auth.TwoFAVerify, http.MethodPost, "/api/admin/auth/2fa/verify", &body, sess, nil, cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("verify before setup: status = %d, want 400", w.Code)
	}

	// Setup returns a secret and QR code.
	w = doJSON(t, env.Auth.TwoFASetup, http.MethodPost, "/api/admin/auth/2fa/setup", nil, sess, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("setup: status = %d, body = %s", w.Code, w.Body.String())
	}
	var setup struct {
		Secret string `json:"secret"`
		QRPNG  string `json:"qr_png"`
	}
	json.Unmarshal(w.Body.Bytes(), &setup)
	if setup.Secret == "" || setup.QRPNG == "" {
		t.Fatal("setup response missing secret or QR code")
	}

	// A wrong code is rejected and enrollment stays incomplete.
	body = `{"code": "000000"}`
	w = doJSON(t, env.Auth.TwoFAVerify, http.MethodPost, "/api/admin/auth/2fa/verify", &body, sess, nil, cookie)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong code: status = %d, want 401", w.Code)
	}
	mid, _ := env.Users.FindByID(user.ID)
	if mid.TOTPEnabled {
		t.Fatal("TOTP enabled by an invalid code")
	}

	// A valid code completes enrollment.
	code, err := totp.GenerateCode(setup.Secret, time.Now())
	if err != nil {
		t.Fatalf("generate code: %v", err)
	}
	body = `{"code": "` + code + `"}`
	w = doJSON(t, env.Auth.TwoFAVerify, http.MethodPost, "/api/admin/auth/2fa/verify", &body, sess, nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("valid code: status = %d, body = %s", w.Code, w.Body.String())
	}

	after, _ := env.Users.FindByID(user.ID)
	if !after.TOTPEnabled {
		t.Error("TOTP not enabled after valid code")
	}
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM users WHERE email = $1", "passwd-change@test.local")
	})

	user, err := env.Users.Create("passwd-change@test.local", "old password", "Password Changer", models.RoleEditor)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	sess := &session.Data{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      "editor",
		TwoFADone: true,
	}

	// Wrong current password is refused.
	body := `{"current_password": "not the password", "new_password": "fresh password"}`
	w := doJSON(t, env.Auth.ChangePassword, http.MethodPost, "/api/admin/auth/password", &body, sess, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("wrong current: status = %d, want 403", w.Code)
	}

	// Too-short replacement is refused.
	body = `{"current_password": "old password", "new_password": "short"}`
	w = doJSON(t, env.Auth.ChangePassword, http.MethodPost, "/api/admin/auth/password", &body, sess, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short new: status = %d, want 400", w.Code)
	}

	body = `{"current_password": "old password", "new_password": "fresh password"}`
	w = doJSON(t, env.Auth.ChangePassword, http.MethodPost, "/api/admin/auth/password", &body, sess, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	reloaded, _ := env.Users.FindByID(user.ID)
	if !env.Users.CheckPassword(reloaded, "fresh password") {
		t.Error("new password does not verify")
	}
	if env.Users.CheckPassword(reloaded, "old password") {
		t.Error("old password still verifies")
	}
}
