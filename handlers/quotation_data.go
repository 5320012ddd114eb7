package handlers

import (
	"encoding/json"

	"github.com/pocketbase/pocketbase/core"

	"reloxmovers/services"
)

// quotationJSON is the wire form of a quotation returned by the API.
// Services keep their stored key order; taxes keep the fov/surcharge/gst
// object shape.
type quotationJSON struct {
	ID              string          `json:"id"`
	QuotationNumber string          `json:"quotationNumber"`
	QuotationDate   string          `json:"quotationDate"`
	CustomerName    string          `json:"customerName"`
	Gender          string          `json:"gender"`
	Address         string          `json:"address"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email,omitempty"`
	Origin          string          `json:"origin"`
	Destination     string          `json:"destination"`
	HouseholdCharge float64         `json:"householdCharge"`
	HouseholdVolume string          `json:"householdVolume,omitempty"`
	CarCharge       float64         `json:"carCharge"`
	Services        json.RawMessage `json:"services"`
	Taxes           json.RawMessage `json:"taxes"`
	Subtotal        float64         `json:"subtotal"`
	TotalAmount     float64         `json:"totalAmount"`
	Created         string          `json:"created"`
	Updated         string          `json:"updated"`
}

// quotationToJSON converts a record to its API form. The subtotal is
// always recomputed, never read from storage.
func quotationToJSON(rec *core.Record) (quotationJSON, error) {
	q, err := services.QuotationFromRecord(rec)
	if err != nil {
		return quotationJSON{}, err
	}

	servicesRaw := rec.GetString("services")
	if servicesRaw == "" {
		servicesRaw = "{}"
	}
	taxesRaw := rec.GetString("taxes")
	if taxesRaw == "" {
		taxesRaw = "{}"
	}

	return quotationJSON{
		ID:              q.ID,
		QuotationNumber: q.QuotationNumber,
		QuotationDate:   q.QuotationDate,
		CustomerName:    q.CustomerName,
		Gender:          q.Gender,
		Address:         q.Address,
		Phone:           q.Phone,
		Email:           q.Email,
		Origin:          q.Origin,
		Destination:     q.Destination,
		HouseholdCharge: q.HouseholdCharge,
		HouseholdVolume: q.HouseholdVolume,
		CarCharge:       q.CarCharge,
		Services:        json.RawMessage(servicesRaw),
		Taxes:           json.RawMessage(taxesRaw),
		Subtotal:        services.ComputeSubtotal(q),
		TotalAmount:     q.TotalAmount,
		Created:         rec.GetString("created"),
		Updated:         rec.GetString("updated"),
	}, nil
}

// quotationInput is the create/update request body.
type quotationInput struct {
	QuotationNumber string          `json:"quotationNumber"`
	QuotationDate   string          `json:"quotationDate"`
	CustomerName    string          `json:"customerName"`
	Gender          string          `json:"gender"`
	Address         string          `json:"address"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	Origin          string          `json:"origin"`
	Destination     string          `json:"destination"`
	HouseholdCharge float64         `json:"householdCharge"`
	HouseholdVolume string          `json:"householdVolume"`
	CarCharge       float64         `json:"carCharge"`
	Services        json.RawMessage `json:"services"`
	Taxes           json.RawMessage `json:"taxes"`
	TotalAmount     float64         `json:"totalAmount"`
}

// toQuotation decodes the JSON fields and builds the typed model for
// validation. The quotation number may still be empty at this point; the
// create handler assigns one before validating.
func (in *quotationInput) toQuotation() (*services.Quotation, error) {
	svc, err := services.DecodeServices(in.Services)
	if err != nil {
		return nil, err
	}
	taxes, err := services.DecodeTaxes(in.Taxes)
	if err != nil {
		return nil, err
	}

	return &services.Quotation{
		QuotationNumber: in.QuotationNumber,
		QuotationDate:   in.QuotationDate,
		CustomerName:    in.CustomerName,
		Gender:          in.Gender,
		Address:         in.Address,
		Phone:           in.Phone,
		Email:           in.Email,
		Origin:          in.Origin,
		Destination:     in.Destination,
		HouseholdCharge: in.HouseholdCharge,
		HouseholdVolume: in.HouseholdVolume,
		CarCharge:       in.CarCharge,
		Services:        svc,
		Taxes:           taxes,
		TotalAmount:     in.TotalAmount,
	}, nil
}

// applyQuotation writes a validated quotation onto a record. Services and
// taxes are re-encoded so storage always holds the normalized forms.
func applyQuotation(rec *core.Record, q *services.Quotation) {
	rec.Set("quotation_number", q.QuotationNumber)
	rec.Set("quotation_date", q.QuotationDate)
	rec.Set("customer_name", q.CustomerName)
	rec.Set("gender", q.Gender)
	rec.Set("address", q.Address)
	rec.Set("phone", q.Phone)
	rec.Set("email", q.Email)
	rec.Set("origin", q.Origin)
	rec.Set("destination", q.Destination)
	rec.Set("household_charge", q.HouseholdCharge)
	rec.Set("household_volume", q.HouseholdVolume)
	rec.Set("car_charge", q.CarCharge)
	rec.Set("services", services.EncodeServices(q.Services))
	rec.Set("taxes", services.EncodeTaxes(q.Taxes))
	rec.Set("total_amount", q.TotalAmount)
}

// findByNumber returns the record holding a quotation number, if any.
func findByNumber(app core.App, number string) *core.Record {
	rec, err := app.FindFirstRecordByData("quotations", "quotation_number", number)
	if err != nil {
		return nil
	}
	return rec
}
