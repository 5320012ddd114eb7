package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reloxmovers/testhelpers"
)

func TestHandleAdminLogin_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestAdmin(t, app, "admin@reloxmovers.in", "test-password-123")

	handler := HandleAdminLogin(app)
	body := `{"email":"admin@reloxmovers.in","password":"test-password-123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Authenticated bool   `json:"authenticated"`
		Email         string `json:"email"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Authenticated || resp.Email != "admin@reloxmovers.in" {
		t.Errorf("response = %+v", resp)
	}

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			session = c
		}
	}
	if session == nil {
		t.Fatal("no session cookie set")
	}
	if session.Value == "" {
		t.Error("session cookie is empty")
	}
	if !session.HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}
}

func TestHandleAdminLogin_WrongPassword(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestAdmin(t, app, "admin@reloxmovers.in", "test-password-123")

	handler := HandleAdminLogin(app)
	body := `{"email":"admin@reloxmovers.in","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("cookie set on failed login")
	}
}

func TestHandleAdminLogin_UnknownEmail(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleAdminLogin(app)
	body := `{"email":"nobody@reloxmovers.in","password":"whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestHandleAdminLogin_BadBody(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleAdminLogin(app)
	for _, body := range []string{"not json", `{"email":"","password":""}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		e := newTestRequestEvent(app, req, rec)

		if err := handler(e); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestHandleAdminCheck(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleAdminCheck(app)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous check: expected 401, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
	attachAdminSession(t, app, req)
	rec = httptest.NewRecorder()
	e = newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated check: expected 200, got %d", rec.Code)
	}
}

func TestHandleAdminLogout_ClearsCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleAdminLogout(app)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	attachAdminSession(t, app, req)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			session = c
		}
	}
	if session == nil {
		t.Fatal("no clearing cookie set")
	}
	if session.Value != "" || session.MaxAge >= 0 {
		t.Errorf("cookie not cleared: value=%q maxAge=%d", session.Value, session.MaxAge)
	}
}
