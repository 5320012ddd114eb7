// Package services holds the quotation domain model, derived-value
// calculations, document composition and the PDF/Excel exporters.
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TaxKind identifies one of the fixed tax lines on a quotation.
type TaxKind string

const (
	TaxFOV       TaxKind = "fov"
	TaxSurcharge TaxKind = "surcharge"
	TaxGST       TaxKind = "gst"
)

// Label returns the display name of the tax kind.
func (k TaxKind) Label() string {
	switch k {
	case TaxFOV:
		return "FOV"
	case TaxSurcharge:
		return "Surcharge"
	case TaxGST:
		return "GST"
	}
	return string(k)
}

// ServiceCharge is one ancillary service entry. Key is the raw camel-case
// identifier used by the admin form ("packingMaterial"); display code
// expands it via HumanizeServiceKey.
type ServiceCharge struct {
	Key    string
	Amount float64
}

// TaxLine is one named tax with its rate and pre-computed amount. The
// amount is stored upstream and is not derived from the percentage here.
type TaxLine struct {
	Kind       TaxKind
	Percentage float64
	Amount     float64
}

// Quotation is the typed form of a quotations record. It is read-only as
// far as the composer and exporters are concerned.
type Quotation struct {
	ID              string
	QuotationNumber string
	QuotationDate   string // YYYY-MM-DD as stored
	CustomerName    string
	Gender          string // "male" or "female"
	Address         string
	Phone           string
	Email           string
	Origin          string
	Destination     string
	HouseholdCharge float64
	HouseholdVolume string
	CarCharge       float64
	Services        []ServiceCharge
	Taxes           []TaxLine
	TotalAmount     float64
}

// Salutation maps the gender flag to the honorific used on the document.
func (q *Quotation) Salutation() string {
	if q.Gender == "female" {
		return "Ms."
	}
	return "Mr."
}

// Validate enforces the record invariants before composition: non-empty
// quotation number and phone, a parseable date, and no negative amounts.
// Negative amounts are never corrected silently.
func (q *Quotation) Validate() error {
	if strings.TrimSpace(q.QuotationNumber) == "" {
		return fmt.Errorf("quotation number is required")
	}
	if strings.TrimSpace(q.CustomerName) == "" {
		return fmt.Errorf("customer name is required")
	}
	if strings.TrimSpace(q.Phone) == "" {
		return fmt.Errorf("phone is required")
	}
	if _, err := FormatDisplayDate(q.QuotationDate); err != nil {
		return err
	}
	if q.HouseholdCharge < 0 {
		return fmt.Errorf("%w: household charge %.2f", ErrInvalidAmount, q.HouseholdCharge)
	}
	if q.CarCharge < 0 {
		return fmt.Errorf("%w: car charge %.2f", ErrInvalidAmount, q.CarCharge)
	}
	for _, s := range q.Services {
		if s.Amount < 0 {
			return fmt.Errorf("%w: service %q %.2f", ErrInvalidAmount, s.Key, s.Amount)
		}
	}
	for _, tax := range q.Taxes {
		if tax.Amount < 0 {
			return fmt.Errorf("%w: %s amount %.2f", ErrInvalidAmount, tax.Kind.Label(), tax.Amount)
		}
		if tax.Percentage < 0 {
			return fmt.Errorf("%w: %s percentage %.2f", ErrInvalidAmount, tax.Kind.Label(), tax.Percentage)
		}
	}
	if q.TotalAmount < 0 {
		return fmt.Errorf("%w: total amount %.2f", ErrInvalidAmount, q.TotalAmount)
	}
	return nil
}

// FieldErrors reports every invariant violation keyed by the API field
// name, for 400 responses that name each offending field. Validate stops
// at the first failure; this accumulates them all.
func (q *Quotation) FieldErrors() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(q.QuotationNumber) == "" {
		fields["quotationNumber"] = "Quotation number is required"
	}
	if strings.TrimSpace(q.CustomerName) == "" {
		fields["customerName"] = "Customer name is required"
	}
	if strings.TrimSpace(q.Phone) == "" {
		fields["phone"] = "Phone is required"
	}
	if _, err := FormatDisplayDate(q.QuotationDate); err != nil {
		fields["quotationDate"] = "Enter a valid date (YYYY-MM-DD)"
	}
	if q.HouseholdCharge < 0 {
		fields["householdCharge"] = "Household charge cannot be negative"
	}
	if q.CarCharge < 0 {
		fields["carCharge"] = "Car charge cannot be negative"
	}
	for _, s := range q.Services {
		if s.Amount < 0 {
			fields["services"] = fmt.Sprintf("Service %q cannot be negative", s.Key)
			break
		}
	}
	for _, tax := range q.Taxes {
		if tax.Amount < 0 || tax.Percentage < 0 {
			fields["taxes"] = fmt.Sprintf("%s cannot be negative", tax.Kind.Label())
			break
		}
	}
	if q.TotalAmount < 0 {
		fields["totalAmount"] = "Total amount cannot be negative"
	}
	return fields
}

// DecodeServices parses the stored services JSON object into an ordered
// list. encoding/json maps do not preserve key order, so the object is
// walked token by token; the admin form's insertion order is the display
// order and must survive the round trip.
func DecodeServices(raw []byte) ([]ServiceCharge, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	if tok == nil {
		return nil, nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("decode services: expected object, got %v", tok)
	}

	var services []ServiceCharge
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode services: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode services: non-string key %v", keyTok)
		}

		var amount float64
		if err := dec.Decode(&amount); err != nil {
			return nil, fmt.Errorf("decode services: value for %q: %w", key, err)
		}
		services = append(services, ServiceCharge{Key: key, Amount: amount})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return services, nil
}

// EncodeServices serializes the ordered service list back into the JSON
// object form the collection stores.
func EncodeServices(services []ServiceCharge) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range services {
		if i > 0 {
			b.WriteByte(',')
		}
		key, _ := json.Marshal(s.Key)
		b.Write(key)
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(s.Amount, 'f', -1, 64))
	}
	b.WriteByte('}')
	return b.String()
}

// taxValue is the wire form of a single tax entry.
type taxValue struct {
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// taxObject is the wire form of the taxes field.
type taxObject struct {
	FOV       taxValue `json:"fov"`
	Surcharge taxValue `json:"surcharge"`
	GST       taxValue `json:"gst"`
}

// DecodeTaxes parses the stored taxes JSON into the fixed-order tagged
// list FOV, Surcharge, GST. Missing entries decode to zero lines, which
// the composer then hides.
func DecodeTaxes(raw []byte) ([]TaxLine, error) {
	var obj taxObject
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("decode taxes: %w", err)
		}
	}
	return []TaxLine{
		{Kind: TaxFOV, Percentage: obj.FOV.Percentage, Amount: obj.FOV.Amount},
		{Kind: TaxSurcharge, Percentage: obj.Surcharge.Percentage, Amount: obj.Surcharge.Amount},
		{Kind: TaxGST, Percentage: obj.GST.Percentage, Amount: obj.GST.Amount},
	}, nil
}

// EncodeTaxes serializes tax lines back into the stored object form.
func EncodeTaxes(taxes []TaxLine) string {
	obj := taxObject{}
	for _, tax := range taxes {
		v := taxValue{Percentage: tax.Percentage, Amount: tax.Amount}
		switch tax.Kind {
		case TaxFOV:
			obj.FOV = v
		case TaxSurcharge:
			obj.Surcharge = v
		case TaxGST:
			obj.GST = v
		}
	}
	out, _ := json.Marshal(obj)
	return string(out)
}
