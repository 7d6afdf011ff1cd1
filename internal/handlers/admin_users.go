// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"districtcms/internal/middleware"
	"districtcms/internal/models"
)

// UsersList returns every account for the admin users page. Admin-only.
func (a *Admin) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.List()
	if err != nil {
		slog.Error("list users failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load users.")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(users))
}

// UserCreate registers a new account. New accounts default to role "none"
// until an admin grants access.
func (a *Admin) UserCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string      `json:"email"`
		Password string      `json:"password"`
		FullName string      `json:"full_name"`
		Role     models.Role `json:"role"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := firstError(
		requireField("Email", req.Email),
		requireField("Full name", req.FullName),
	); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "Password must be at least 8 characters.")
		return
	}
	if req.Role != "" && !models.ValidRole(req.Role) {
		writeError(w, http.StatusBadRequest, "Invalid role.")
		return
	}

	if existing, err := a.users.FindByEmail(req.Email); err == nil && existing != nil {
		writeError(w, http.StatusConflict, "An account with that email already exists.")
		return
	}

	created, err := a.users.Create(req.Email, req.Password, req.FullName, req.Role)
	if err != nil {
		slog.Error("create user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create user.")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UserUpdateRole changes an account's role. Admins cannot change their own
// role, which keeps at least one admin able to undo a mistake.
func (a *Admin) UserUpdateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess := middleware.SessionFromCtx(r.Context())
	if sess != nil && sess.UserID == id {
		writeError(w, http.StatusForbidden, "You cannot change your own role.")
		return
	}

	var req struct {
		Role models.Role `json:"role"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if !models.ValidRole(req.Role) {
		writeError(w, http.StatusBadRequest, "Invalid role.")
		return
	}

	target, err := a.users.FindByID(id)
	if err != nil {
		slog.Error("find user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load user.")
		return
	}
	if target == nil {
		writeError(w, http.StatusNotFound, "User not found.")
		return
	}

	if err := a.users.UpdateRole(id, req.Role); err != nil {
		slog.Error("update role failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update role.")
		return
	}

	target.Role = req.Role
	writeJSON(w, http.StatusOK, target)
}

// UserDelete removes an account. Admins cannot delete themselves.
func (a *Admin) UserDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sess := middleware.SessionFromCtx(r.Context())
	if sess != nil && sess.UserID == id {
		writeError(w, http.StatusForbidden, "You cannot delete your own account.")
		return
	}

	if err := a.users.Delete(id); err != nil {
		slog.Error("delete user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete user.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
