package collections_test

import (
	"testing"

	"reloxmovers/collections"
	"reloxmovers/testhelpers"
)

func TestSeed_CreatesSampleQuotation(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	rec, err := app.FindFirstRecordByData("quotations", "quotation_number", "RLX-2026-001")
	if err != nil {
		t.Fatalf("sample quotation not created: %v", err)
	}
	if got := rec.GetString("customer_name"); got == "" {
		t.Error("sample quotation has no customer name")
	}
	if got := rec.GetFloat("total_amount"); got != 67200 {
		t.Errorf("sample total_amount = %v, want 67200", got)
	}
}

func TestSeed_SkipsWhenNotEmpty(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestQuotation(t, app, "RLX-2026-050")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	records, err := app.FindRecordsByFilter("quotations", "id != ''", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1 (seed must skip a non-empty collection)", len(records))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	records, err := app.FindRecordsByFilter("quotations", "id != ''", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}
