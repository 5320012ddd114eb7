package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// sessionCookieName holds the admin auth token between requests.
const sessionCookieName = "admin_session"

// AdminFromRequest resolves the admin_session cookie to a superuser auth
// record. Returns nil when the cookie is absent, expired or forged.
func AdminFromRequest(app *pocketbase.PocketBase, r *http.Request) *core.Record {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	record, err := app.FindAuthRecordByToken(cookie.Value, core.TokenTypeAuth)
	if err != nil {
		return nil
	}
	if record.Collection().Name != core.CollectionNameSuperusers {
		return nil
	}
	return record
}

// RequireAdmin guards a handler behind the admin session. Unauthenticated
// requests get a 401 JSON body so the panel can fall back to its login
// prompt.
func RequireAdmin(app *pocketbase.PocketBase, next func(*core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if AdminFromRequest(app, e.Request) == nil {
			return apiError(e, http.StatusUnauthorized, "Not authenticated")
		}
		return next(e)
	}
}
