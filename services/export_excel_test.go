package services

import (
	"bytes"
	"errors"
	"testing"

	"reloxmovers/testhelpers"
)

func TestGenerateQuotationRegisterExcel(t *testing.T) {
	rows := []RegisterRow{
		{
			QuotationNumber: "RLX-2026-001",
			Date:            "15/06/2026",
			CustomerName:    "Priya Sharma",
			Phone:           "9876543210",
			Route:           "Pune -> Hyderabad",
			Subtotal:        45000,
			TotalAmount:     53864,
		},
		{
			QuotationNumber: "RLX-2026-002",
			Date:            "20/06/2026",
			CustomerName:    "Ananth Krishnan",
			Phone:           "9876500000",
			Route:           "Bangalore -> Pune",
			Subtotal:        60000,
			TotalAmount:     70800,
		},
	}

	out, err := GenerateQuotationRegisterExcel(rows)
	if err != nil {
		t.Fatalf("GenerateQuotationRegisterExcel error = %v", err)
	}
	if len(out) == 0 {
		t.Fatal("generated workbook is empty")
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Errorf("output does not start with zip header, got %q", out[:min(4, len(out))])
	}
}

func TestGenerateQuotationRegisterExcel_NoRows(t *testing.T) {
	out, err := GenerateQuotationRegisterExcel(nil)
	if err != nil {
		t.Fatalf("GenerateQuotationRegisterExcel(nil) error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Error("empty register is not a valid workbook")
	}
}

func TestGenerateQuotationRegisterExcel_NegativeRejected(t *testing.T) {
	rows := []RegisterRow{{QuotationNumber: "RLX-2026-001", Subtotal: -1}}

	_, err := GenerateQuotationRegisterExcel(rows)
	if err == nil {
		t.Fatal("expected error for negative subtotal")
	}
	var exportErr *ExportError
	if !errors.As(err, &exportErr) {
		t.Errorf("error = %T, want *ExportError", err)
	}
}

func TestBuildQuotationRegister(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestQuotation(t, app, "RLX-2026-001")
	testhelpers.CreateTestQuotation(t, app, "RLX-2026-002")

	rows, err := BuildQuotationRegister(app)
	if err != nil {
		t.Fatalf("BuildQuotationRegister error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	for _, r := range rows {
		if r.Route != "Pune -> Hyderabad" {
			t.Errorf("Route = %q, want Pune -> Hyderabad", r.Route)
		}
		if r.Subtotal != 45000 {
			t.Errorf("Subtotal = %v, want 45000", r.Subtotal)
		}
		if r.TotalAmount != 53864 {
			t.Errorf("TotalAmount = %v, want 53864", r.TotalAmount)
		}
	}
}

func TestBuildQuotationRegister_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rows, err := BuildQuotationRegister(app)
	if err != nil {
		t.Fatalf("BuildQuotationRegister error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"Priya Sharma", "Priya Sharma"},
		{"=cmd()", "'=cmd()"},
		{"+1234", "'+1234"},
		{"-500", "'-500"},
		{"@handle", "'@handle"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.input); got != tt.expect {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
