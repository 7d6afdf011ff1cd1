// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"districtcms/internal/middleware"
	"districtcms/internal/session"
	"districtcms/internal/store"
)

// totpIssuer is the issuer label shown in authenticator apps.
const totpIssuer = "District CMS"

// Auth groups the authentication handlers. The panel is a client-side app,
// so everything here speaks JSON.
type Auth struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{sessions: sessions, userStore: userStore}
}

// Login verifies email and password and opens a session. The session is
// not fully authenticated until 2FA completes; the response tells the
// client which step comes next.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.userStore.FindByEmail(req.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Login failed.")
		return
	}
	// Same message whether the account is missing or the password is wrong.
	if user == nil || !a.userStore.CheckPassword(user, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}
	if !user.CanManageContent() {
		writeError(w, http.StatusForbidden, "Your account has no admin panel access.")
		return
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Login failed.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"needs_2fa_setup": user.Needs2FASetup(),
		"role":            user.Role,
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	writeJSON(w, http.StatusOK, map[string]bool{"logged_out": true})
}

// ChangePassword rotates the signed-in user's password after confirming
// the current one. Existing sessions stay valid.
func (a *Auth) ChangePassword(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "Not logged in.")
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.NewPassword) < 8 {
		writeError(w, http.StatusBadRequest, "New password must be at least 8 characters.")
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for password change failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Password change failed.")
		return
	}
	if !a.userStore.CheckPassword(user, req.CurrentPassword) {
		writeError(w, http.StatusForbidden, "Current password is incorrect.")
		return
	}

	if err := a.userStore.UpdatePassword(user.ID, req.NewPassword); err != nil {
		slog.Error("password update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Password change failed.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"changed": true})
}

// Me returns the current session's identity. The panel calls this on load
// to decide whether to show the login screen.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "Not logged in.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":    sess.UserID,
		"email":      sess.Email,
		"full_name":  sess.FullName,
		"role":       sess.Role,
		"two_fa":     sess.TwoFADone,
		"csrf_token": middleware.GetCSRFToken(r),
	})
}

// TwoFASetup generates a TOTP secret for the logged-in user and returns
// the otpauth QR code as base64 PNG. The secret only counts once a valid
// code confirms it via TwoFAVerify.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "Not logged in.")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to start 2FA setup.")
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to start 2FA setup.")
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to start 2FA setup.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"secret":  key.Secret(),
		"qr_png":  base64.StdEncoding.EncodeToString(qrPNG),
		"account": sess.Email,
	})
}

// TwoFAVerify validates a TOTP code and completes authentication. On a
// first-time setup a valid code also flips totp_enabled.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "Not logged in.")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for 2fa failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Verification failed.")
		return
	}
	if user.TOTPSecret == nil {
		writeError(w, http.StatusBadRequest, "2FA setup has not been started.")
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		writeError(w, http.StatusUnauthorized, "Invalid code. Please try again.")
		return
	}

	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Verification failed.")
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Verification failed.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"verified": true})
}
