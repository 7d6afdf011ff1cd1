// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Upload validation runs before any storage call, so these tests need no
// database, Valkey, or S3 — an Admin with nil dependencies is enough to
// exercise the size caps and MIME checks.
package handlers

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

func uploadAdmin() *Admin {
	return NewAdmin(nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)
}

// multipartUpload builds a multipart request carrying content as the
// "file" field.
func multipartUpload(t *testing.T, target, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	r := httptest.NewRequest(http.MethodPost, target, &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

// pngBytes returns a buffer starting with the PNG signature so the
// sniffer reports image/png. Extra zero padding pads it to size.
func pngBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, "\x89PNG\r\n\x1a\n")
	return b
}

func TestLogoUploadRejectsOversized(t *testing.T) {
	a := uploadAdmin()

	r := multipartUpload(t, "/api/admin/uploads/logo", "big.png", pngBytes(maxLogoUpload+8192))
	w := httptest.NewRecorder()
	a.LogoUpload(w, r)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413 for oversized logo", w.Code)
	}
}

func TestLogoUploadRejectsNonImage(t *testing.T) {
	a := uploadAdmin()

	r := multipartUpload(t, "/api/admin/uploads/logo", "notes.txt", []byte("just some plain text"))
	w := httptest.NewRecorder()
	a.LogoUpload(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for non-image logo", w.Code)
	}
}

func TestVideoUploadRejectsWrongContainer(t *testing.T) {
	a := uploadAdmin()

	// An image sneaking in under a video endpoint must be rejected by the
	// container whitelist, not by storage.
	r := multipartUpload(t, "/api/admin/uploads/video", "clip.png", pngBytes(600))
	w := httptest.NewRecorder()
	a.VideoUpload(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for non-video upload", w.Code)
	}
}

func TestVideoUploadUnknownExtension(t *testing.T) {
	a := uploadAdmin()

	// Unrecognizable binary with an unknown extension stays
	// application/octet-stream and is rejected.
	r := multipartUpload(t, "/api/admin/uploads/video", "clip.bin", make([]byte, 600))
	w := httptest.NewRecorder()
	a.VideoUpload(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for unknown container", w.Code)
	}
}

func TestVideoUploadExtensionFallback(t *testing.T) {
	a := uploadAdmin()

	// Video containers often sniff as octet-stream; a .mp4 extension maps
	// it back to video/mp4, so the request clears validation and only then
	// fails on unconfigured storage.
	r := multipartUpload(t, "/api/admin/uploads/video", "walkthrough.mp4", make([]byte, 600))
	w := httptest.NewRecorder()
	a.VideoUpload(w, r)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 after validation passes", w.Code)
	}
}

func TestMediaUploadRejectsUnknownType(t *testing.T) {
	a := uploadAdmin()

	r := multipartUpload(t, "/api/admin/media", "notes.txt", []byte("plain text is neither image nor video"))
	w := httptest.NewRecorder()
	a.MediaUpload(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for non-media upload", w.Code)
	}
}

func TestMediaUploadWithoutStorage(t *testing.T) {
	a := uploadAdmin()

	// A valid image passes validation and then hits the storage guard.
	r := multipartUpload(t, "/api/admin/media", "plant.png", pngBytes(600))
	w := httptest.NewRecorder()
	a.MediaUpload(w, r)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 when storage is unconfigured", w.Code)
	}
}

func TestUploadRequiresFile(t *testing.T) {
	a := uploadAdmin()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("alt_text", "missing the file itself")
	mw.Close()

	r := httptest.NewRequest(http.MethodPost, "/api/admin/media", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	a.MediaUpload(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 when no file is attached", w.Code)
	}
}

func TestUploadExt(t *testing.T) {
	cases := []struct {
		filename, contentType, want string
	}{
		{"photo.JPG", "image/jpeg", ".jpg"},
		{"logo", "image/png", ".png"},
		{"clip", "video/quicktime", ".mov"},
		{"blob", "application/octet-stream", ""},
	}
	for _, c := range cases {
		if got := uploadExt(c.filename, c.contentType); got != c.want {
			t.Errorf("uploadExt(%q, %q) = %q, want %q", c.filename, c.contentType, got, c.want)
		}
	}
}

func TestVideoTypeFromExt(t *testing.T) {
	cases := []struct {
		filename, want string
	}{
		{"tour.mp4", "video/mp4"},
		{"tour.M4V", "video/mp4"},
		{"tour.webm", "video/webm"},
		{"tour.mov", "video/quicktime"},
		{"tour.avi", "video/x-msvideo"},
		{"tour.mkv", "application/octet-stream"},
	}
	for _, c := range cases {
		if got := videoTypeFromExt(c.filename); got != c.want {
			t.Errorf("videoTypeFromExt(%q) = %q, want %q", c.filename, got, c.want)
		}
	}
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestGenerateThumbnailSkipsSmallImages(t *testing.T) {
	data, err := generateThumbnail(bytes.NewReader(encodePNG(t, 100, 100)), thumbMaxWidth)
	if err != nil {
		t.Fatalf("generateThumbnail: %v", err)
	}
	if data != nil {
		t.Error("thumbnail generated for image already under the width cap")
	}
}

func TestGenerateThumbnailResizesWideImages(t *testing.T) {
	data, err := generateThumbnail(bytes.NewReader(encodePNG(t, 800, 200)), thumbMaxWidth)
	if err != nil {
		t.Fatalf("generateThumbnail: %v", err)
	}
	if data == nil {
		t.Fatal("no thumbnail for wide image")
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if cfg.Width != thumbMaxWidth {
		t.Errorf("thumbnail width = %d, want %d", cfg.Width, thumbMaxWidth)
	}
	if cfg.Height != 100 {
		t.Errorf("thumbnail height = %d, want 100 (aspect preserved)", cfg.Height)
	}
}
