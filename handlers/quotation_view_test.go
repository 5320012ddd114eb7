package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reloxmovers/testhelpers"
)

func TestHandleQuotationView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	saved := testhelpers.CreateTestQuotation(t, app, "RLX-2026-001")
	handler := HandleQuotationView(app)

	req := httptest.NewRequest(http.MethodGet, "/api/quotations/"+saved.Id, nil)
	req.SetPathValue("id", saved.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp quotationJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.ID != saved.Id {
		t.Errorf("ID = %q, want %q", resp.ID, saved.Id)
	}
	if resp.CustomerName != "Priya Sharma" {
		t.Errorf("CustomerName = %q", resp.CustomerName)
	}
	if resp.Subtotal != 45000 {
		t.Errorf("Subtotal = %v, want 45000", resp.Subtotal)
	}
}

func TestHandleQuotationView_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationView(app)

	req := httptest.NewRequest(http.MethodGet, "/api/quotations/missing123", nil)
	req.SetPathValue("id", "missing123")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleQuotationView_MissingID(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationView(app)

	req := httptest.NewRequest(http.MethodGet, "/api/quotations/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
