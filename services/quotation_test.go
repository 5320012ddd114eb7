package services

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecodeServices_PreservesOrder(t *testing.T) {
	raw := []byte(`{"unpacking":3000,"packing":5000,"storage":0,"transitInsurance":1200}`)

	got, err := DecodeServices(raw)
	if err != nil {
		t.Fatalf("DecodeServices error = %v", err)
	}

	want := []ServiceCharge{
		{Key: "unpacking", Amount: 3000},
		{Key: "packing", Amount: 5000},
		{Key: "storage", Amount: 0},
		{Key: "transitInsurance", Amount: 1200},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeServices = %v, want %v", got, want)
	}
}

func TestDecodeServices_Empty(t *testing.T) {
	for _, raw := range []string{"", "null", "{}", "  "} {
		got, err := DecodeServices([]byte(raw))
		if err != nil {
			t.Errorf("DecodeServices(%q) error = %v", raw, err)
		}
		if len(got) != 0 {
			t.Errorf("DecodeServices(%q) = %v, want empty", raw, got)
		}
	}
}

func TestDecodeServices_Malformed(t *testing.T) {
	for _, raw := range []string{"[1,2]", `{"packing":"lots"}`, `{"packing"`} {
		if _, err := DecodeServices([]byte(raw)); err == nil {
			t.Errorf("DecodeServices(%q) expected error, got nil", raw)
		}
	}
}

func TestEncodeServices_RoundTrip(t *testing.T) {
	services := []ServiceCharge{
		{Key: "packing", Amount: 5000},
		{Key: "unpacking", Amount: 0},
		{Key: "storage", Amount: 1250.5},
	}

	encoded := EncodeServices(services)
	decoded, err := DecodeServices([]byte(encoded))
	if err != nil {
		t.Fatalf("DecodeServices(%q) error = %v", encoded, err)
	}
	if !reflect.DeepEqual(decoded, services) {
		t.Errorf("round trip = %v, want %v", decoded, services)
	}
}

func TestDecodeTaxes_FixedOrder(t *testing.T) {
	raw := []byte(`{"gst":{"percentage":18,"amount":8064},"fov":{"percentage":2,"amount":800}}`)

	got, err := DecodeTaxes(raw)
	if err != nil {
		t.Fatalf("DecodeTaxes error = %v", err)
	}

	want := []TaxLine{
		{Kind: TaxFOV, Percentage: 2, Amount: 800},
		{Kind: TaxSurcharge, Percentage: 0, Amount: 0},
		{Kind: TaxGST, Percentage: 18, Amount: 8064},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeTaxes = %v, want %v", got, want)
	}
}

func TestDecodeTaxes_Empty(t *testing.T) {
	got, err := DecodeTaxes(nil)
	if err != nil {
		t.Fatalf("DecodeTaxes(nil) error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("DecodeTaxes(nil) returned %d lines, want 3", len(got))
	}
	for _, line := range got {
		if line.Amount != 0 || line.Percentage != 0 {
			t.Errorf("DecodeTaxes(nil) line %s = %+v, want zero", line.Kind, line)
		}
	}
}

func TestEncodeTaxes_RoundTrip(t *testing.T) {
	taxes := []TaxLine{
		{Kind: TaxFOV, Percentage: 2, Amount: 800},
		{Kind: TaxSurcharge, Percentage: 5, Amount: 2250},
		{Kind: TaxGST, Percentage: 18, Amount: 8064},
	}

	encoded := EncodeTaxes(taxes)
	decoded, err := DecodeTaxes([]byte(encoded))
	if err != nil {
		t.Fatalf("DecodeTaxes(%q) error = %v", encoded, err)
	}
	if !reflect.DeepEqual(decoded, taxes) {
		t.Errorf("round trip = %v, want %v", decoded, taxes)
	}
}

func TestTaxKindLabel(t *testing.T) {
	tests := []struct {
		kind   TaxKind
		expect string
	}{
		{TaxFOV, "FOV"},
		{TaxSurcharge, "Surcharge"},
		{TaxGST, "GST"},
	}
	for _, tt := range tests {
		if got := tt.kind.Label(); got != tt.expect {
			t.Errorf("Label(%s) = %q, want %q", tt.kind, got, tt.expect)
		}
	}
}

func TestSalutation(t *testing.T) {
	male := Quotation{Gender: "male"}
	if got := male.Salutation(); got != "Mr." {
		t.Errorf("male salutation = %q, want Mr.", got)
	}
	female := Quotation{Gender: "female"}
	if got := female.Salutation(); got != "Ms." {
		t.Errorf("female salutation = %q, want Ms.", got)
	}
}

func validQuotation() *Quotation {
	return &Quotation{
		QuotationNumber: "RLX-2024-001",
		QuotationDate:   "2024-06-15",
		CustomerName:    "Ananth Krishnan",
		Gender:          "male",
		Address:         "Flat 7B, Sunrise Apartments\nBangalore 560038",
		Phone:           "9876543210",
		Email:           "ananth@example.com",
		Origin:          "Bangalore",
		Destination:     "Pune",
		HouseholdCharge: 40000,
		HouseholdVolume: "2 BHK",
		CarCharge:       0,
		Services: []ServiceCharge{
			{Key: "packing", Amount: 5000},
			{Key: "unpacking", Amount: 0},
		},
		Taxes: []TaxLine{
			{Kind: TaxFOV, Percentage: 2, Amount: 800},
			{Kind: TaxSurcharge, Percentage: 0, Amount: 0},
			{Kind: TaxGST, Percentage: 18, Amount: 8064},
		},
		TotalAmount: 53864,
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validQuotation().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestFieldErrors(t *testing.T) {
	q := validQuotation()
	if fields := q.FieldErrors(); len(fields) != 0 {
		t.Errorf("FieldErrors on valid quotation = %v, want empty", fields)
	}

	q.CustomerName = ""
	q.Phone = " "
	q.QuotationDate = "15/06/2024"
	q.TotalAmount = -1

	fields := q.FieldErrors()
	for _, field := range []string{"customerName", "phone", "quotationDate", "totalAmount"} {
		if fields[field] == "" {
			t.Errorf("no message for field %q: %v", field, fields)
		}
	}
	if len(fields) != 4 {
		t.Errorf("FieldErrors reported %d fields, want 4: %v", len(fields), fields)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Quotation)
		sentinel error
	}{
		{"missing number", func(q *Quotation) { q.QuotationNumber = "  " }, nil},
		{"missing customer", func(q *Quotation) { q.CustomerName = "" }, nil},
		{"missing phone", func(q *Quotation) { q.Phone = "" }, nil},
		{"bad date", func(q *Quotation) { q.QuotationDate = "15/06/2024" }, ErrInvalidDate},
		{"negative household", func(q *Quotation) { q.HouseholdCharge = -1 }, ErrInvalidAmount},
		{"negative car", func(q *Quotation) { q.CarCharge = -500 }, ErrInvalidAmount},
		{"negative service", func(q *Quotation) { q.Services[0].Amount = -5 }, ErrInvalidAmount},
		{"negative tax amount", func(q *Quotation) { q.Taxes[2].Amount = -1 }, ErrInvalidAmount},
		{"negative tax percentage", func(q *Quotation) { q.Taxes[0].Percentage = -2 }, ErrInvalidAmount},
		{"negative total", func(q *Quotation) { q.TotalAmount = -53864 }, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuotation()
			tt.mutate(q)
			err := q.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("Validate() = %v, want %v", err, tt.sentinel)
			}
		})
	}
}
