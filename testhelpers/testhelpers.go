// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"reloxmovers/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestQuotation creates a quotation record with sensible defaults
// and the given quotation number.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, number string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation_number", number)
	record.Set("quotation_date", "2026-06-15")
	record.Set("customer_name", "Priya Sharma")
	record.Set("gender", "female")
	record.Set("address", "12 MG Road\nPune 411001")
	record.Set("phone", "9876543210")
	record.Set("email", "priya@example.com")
	record.Set("origin", "Pune")
	record.Set("destination", "Hyderabad")
	record.Set("household_charge", 40000)
	record.Set("household_volume", "2 BHK")
	record.Set("car_charge", 0)
	record.Set("services", `{"packing":5000,"unpacking":0}`)
	record.Set("taxes", `{"fov":{"percentage":2,"amount":800},"surcharge":{"percentage":0,"amount":0},"gst":{"percentage":18,"amount":8064}}`)
	record.Set("total_amount", 53864)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestAdmin creates a superuser auth record with the given
// credentials and returns it.
func CreateTestAdmin(t *testing.T, app *pocketbase.PocketBase, email, password string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(core.CollectionNameSuperusers)
	if err != nil {
		t.Fatalf("failed to find superusers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.SetEmail(email)
	record.SetPassword(password)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test admin: %v", err)
	}

	return record
}

// NewAdminToken issues an auth token for a superuser record, for use in
// session-cookie tests.
func NewAdminToken(t *testing.T, admin *core.Record) string {
	t.Helper()

	token, err := admin.NewAuthToken()
	if err != nil {
		t.Fatalf("failed to issue admin token: %v", err)
	}
	return token
}
