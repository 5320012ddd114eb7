package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// sessionMaxAge is how long an admin session cookie stays valid.
const sessionMaxAge = 7 * 24 * 60 * 60 // seconds

// HandleAdminLogin validates superuser credentials and issues the
// admin_session cookie holding a PocketBase auth token.
func HandleAdminLogin(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(e.Request.Body).Decode(&body); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(body.Email)
		if body.Email == "" || body.Password == "" {
			return apiError(e, http.StatusBadRequest, "Email and password are required")
		}

		record, err := e.App.FindAuthRecordByEmail(core.CollectionNameSuperusers, body.Email)
		if err != nil || !record.ValidatePassword(body.Password) {
			return apiError(e, http.StatusUnauthorized, "Invalid email or password")
		}

		token, err := record.NewAuthToken()
		if err != nil {
			log.Printf("auth: could not issue token for %s: %v", body.Email, err)
			return apiError(e, http.StatusInternalServerError, "Could not start session")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   sessionMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return e.JSON(http.StatusOK, map[string]any{
			"authenticated": true,
			"email":         record.Email(),
		})
	}
}

// HandleAdminCheck reports whether the request carries a valid admin
// session. The panel polls this on load to decide between the dashboard
// and the login prompt.
func HandleAdminCheck(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		admin := AdminFromRequest(app, e.Request)
		if admin == nil {
			return e.JSON(http.StatusUnauthorized, map[string]any{"authenticated": false})
		}
		return e.JSON(http.StatusOK, map[string]any{
			"authenticated": true,
			"email":         admin.Email(),
		})
	}
}

// HandleAdminLogout clears the session cookie.
func HandleAdminLogout(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		http.SetCookie(e.Response, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return e.NoContent(http.StatusNoContent)
	}
}
