package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"reloxmovers/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// attachAdminSession creates a superuser and sets its session cookie on
// the request.
func attachAdminSession(t *testing.T, app *pocketbase.PocketBase, req *http.Request) {
	t.Helper()

	admin := testhelpers.CreateTestAdmin(t, app, "admin@reloxmovers.in", "test-password-123")
	token := testhelpers.NewAdminToken(t, admin)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
}
