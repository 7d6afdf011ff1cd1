// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"districtcms/internal/models"
	"districtcms/internal/storage"
)

const (
	// maxLibraryUpload caps media library uploads (50 MB).
	maxLibraryUpload = 50 << 20

	// maxLogoUpload caps client logo uploads (2 MB).
	maxLogoUpload = 2 << 20

	// maxVideoUpload caps project video uploads (100 MB).
	maxVideoUpload = 100 << 20

	// thumbMaxWidth is the maximum thumbnail width in pixels.
	thumbMaxWidth = 400

	// thumbQuality is the JPEG quality for generated thumbnails.
	thumbQuality = 80

	// maxImagePixels caps decoded image size to prevent memory bombs.
	maxImagePixels = 100_000_000
)

// allowedVideoTypes are the container formats accepted for project videos.
var allowedVideoTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
	"video/x-msvideo": true,
}

// thumbableTypes are image types that support thumbnail generation.
// GIF is excluded to preserve animation.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// MediaList returns the media library, newest first.
func (a *Admin) MediaList(w http.ResponseWriter, r *http.Request) {
	items, err := a.media.List()
	if err != nil {
		slog.Error("list media failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load media library.")
		return
	}
	writeJSON(w, http.StatusOK, emptyList(items))
}

// MediaUpload handles multipart upload into the shared media library.
// Images and videos up to 50 MB; images get a generated thumbnail.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	fileBytes, header, contentType, ok := a.readUpload(w, r, maxLibraryUpload, "Maximum size is 50 MB.")
	if !ok {
		return
	}
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("File type %q is not allowed.", contentType))
		return
	}
	if a.storageClient == nil {
		writeError(w, http.StatusServiceUnavailable, "Object storage is not configured.")
		return
	}

	ext := uploadExt(header.Filename, contentType)
	key := storage.ObjectKey("uploads", ext)
	ctx := r.Context()

	if err := a.storageClient.Upload(ctx, a.storageClient.MediaBucket(), key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("media upload failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload file.")
		return
	}

	// Thumbnail for large images, best-effort.
	var thumbPath *string
	if thumbableTypes[contentType] {
		thumbData, err := generateThumbnail(bytes.NewReader(fileBytes), thumbMaxWidth)
		if err != nil {
			slog.Warn("thumbnail generation failed", "key", key, "error", err)
		} else if thumbData != nil {
			thumbKey := strings.TrimSuffix(key, ext) + "_thumb.jpg"
			if err := a.storageClient.Upload(ctx, a.storageClient.MediaBucket(), thumbKey, "image/jpeg", bytes.NewReader(thumbData), int64(len(thumbData))); err != nil {
				slog.Warn("thumbnail upload failed", "key", thumbKey, "error", err)
			} else {
				tp := a.storageClient.FileURL(a.storageClient.MediaBucket(), thumbKey)
				thumbPath = &tp
			}
		}
	}

	size := int64(len(fileBytes))
	asset := &models.MediaAsset{
		FileName:  header.Filename,
		FilePath:  a.storageClient.FileURL(a.storageClient.MediaBucket(), key),
		FileType:  contentType,
		FileSize:  &size,
		ThumbPath: thumbPath,
	}
	if alt := r.FormValue("alt_text"); alt != "" {
		asset.AltText = &alt
	}

	created, err := a.media.Create(asset)
	if err != nil {
		slog.Error("media db insert failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save file metadata.")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// MediaUpdateAltText changes an asset's alt text.
func (a *Admin) MediaUpdateAltText(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		AltText *string `json:"alt_text"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := a.media.UpdateAltText(id, req.AltText); err != nil {
		slog.Error("update alt text failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update alt text.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// MediaDelete removes a library asset: storage objects first (best-effort),
// then the metadata row.
func (a *Admin) MediaDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	asset, err := a.media.FindByID(id)
	if err != nil {
		slog.Error("find media failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load media asset.")
		return
	}
	if asset == nil {
		writeError(w, http.StatusNotFound, "Media asset not found.")
		return
	}

	a.deleteStoredFile(r.Context(), asset.FilePath)
	if asset.ThumbPath != nil {
		a.deleteStoredFile(r.Context(), *asset.ThumbPath)
	}

	if err := a.media.Delete(id); err != nil {
		slog.Error("delete media failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete media asset.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// LogoUpload handles client logo uploads: any image type, 2 MB cap. Returns
// the public URL for the form to store on the record.
func (a *Admin) LogoUpload(w http.ResponseWriter, r *http.Request) {
	fileBytes, header, contentType, ok := a.readUpload(w, r, maxLogoUpload, "Logo files must be under 2 MB.")
	if !ok {
		return
	}
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "Logo must be an image file.")
		return
	}
	if a.storageClient == nil {
		writeError(w, http.StatusServiceUnavailable, "Object storage is not configured.")
		return
	}

	key := storage.ObjectKey("logos", uploadExt(header.Filename, contentType))
	if err := a.storageClient.Upload(r.Context(), a.storageClient.MediaBucket(), key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("logo upload failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload logo.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"url": a.storageClient.FileURL(a.storageClient.MediaBucket(), key),
	})
}

// VideoUpload handles project video uploads into the video bucket.
// MP4, WebM, QuickTime, and AVI containers up to 100 MB.
func (a *Admin) VideoUpload(w http.ResponseWriter, r *http.Request) {
	fileBytes, header, contentType, ok := a.readUpload(w, r, maxVideoUpload, "Video files must be under 100 MB.")
	if !ok {
		return
	}
	// Sniffing often reports video containers as application/octet-stream;
	// fall back to the extension for the common cases.
	if contentType == "application/octet-stream" {
		contentType = videoTypeFromExt(header.Filename)
	}
	if !allowedVideoTypes[contentType] {
		writeError(w, http.StatusBadRequest, "Video must be MP4, WebM, QuickTime, or AVI.")
		return
	}
	if a.storageClient == nil {
		writeError(w, http.StatusServiceUnavailable, "Object storage is not configured.")
		return
	}

	key := storage.ObjectKey("videos", uploadExt(header.Filename, contentType))
	if err := a.storageClient.Upload(r.Context(), a.storageClient.VideoBucket(), key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("video upload failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload video.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"url": a.storageClient.FileURL(a.storageClient.VideoBucket(), key),
	})
}

// readUpload parses the multipart form, enforces the size cap, and sniffs
// the content type before any network call. Returns ok=false after writing
// an error response.
func (a *Admin) readUpload(w http.ResponseWriter, r *http.Request, maxSize int64, sizeMsg string) ([]byte, *multipartHeader, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1024)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large. "+sizeMsg)
		return nil, nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided.")
		return nil, nil, "", false
	}
	defer file.Close()

	if header.Size > maxSize {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large. "+sizeMsg)
		return nil, nil, "", false
	}

	// Sniff the first 512 bytes; the declared Content-Type is not trusted.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		writeError(w, http.StatusInternalServerError, "Failed to read file.")
		return nil, nil, "", false
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// SVG sniffs as XML or plain text.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to process file.")
		return nil, nil, "", false
	}
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read file.")
		return nil, nil, "", false
	}

	return fileBytes, &multipartHeader{Filename: header.Filename, Size: header.Size}, contentType, true
}

// multipartHeader carries the header fields handlers care about.
type multipartHeader struct {
	Filename string
	Size     int64
}

// generateThumbnail produces a JPEG preview at most maxWidth wide. Returns
// (nil, nil) when the source is already small enough.
func generateThumbnail(src io.ReadSeeker, maxWidth int) ([]byte, error) {
	imgCfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if int64(imgCfg.Width)*int64(imgCfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", imgCfg.Width, imgCfg.Height, maxImagePixels)
	}
	if imgCfg.Width <= maxWidth {
		return nil, nil
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	ratio := float64(maxWidth) / float64(bounds.Dx())
	newHeight := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// uploadExt picks a file extension: the original filename's if present,
// otherwise one derived from the sniffed type.
func uploadExt(filename, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext
	}
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "video/quicktime":
		return ".mov"
	case "video/x-msvideo":
		return ".avi"
	default:
		return ""
	}
}

// videoTypeFromExt maps common video extensions to their MIME type.
func videoTypeFromExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4", ".m4v":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	case ".avi":
		return "video/x-msvideo"
	default:
		return "application/octet-stream"
	}
}
