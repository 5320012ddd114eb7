// Package handlers wires the admin JSON API and export downloads onto the
// PocketBase router.
package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// apiError writes a uniform JSON error payload.
func apiError(e *core.RequestEvent, status int, message string) error {
	return e.JSON(status, map[string]any{"error": message})
}

// apiFieldErrors writes a 400 with per-field validation messages.
func apiFieldErrors(e *core.RequestEvent, fields map[string]string) error {
	return e.JSON(http.StatusBadRequest, map[string]any{
		"error":  "Validation failed",
		"fields": fields,
	})
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
