package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// QuotationFromRecord converts a quotations record into the typed model.
// The services and taxes JSON fields are decoded into their ordered forms.
func QuotationFromRecord(rec *core.Record) (*Quotation, error) {
	services, err := DecodeServices([]byte(rec.GetString("services")))
	if err != nil {
		return nil, fmt.Errorf("quotation %s: %w", rec.Id, err)
	}

	taxes, err := DecodeTaxes([]byte(rec.GetString("taxes")))
	if err != nil {
		return nil, fmt.Errorf("quotation %s: %w", rec.Id, err)
	}

	return &Quotation{
		ID:              rec.Id,
		QuotationNumber: rec.GetString("quotation_number"),
		QuotationDate:   rec.GetString("quotation_date"),
		CustomerName:    rec.GetString("customer_name"),
		Gender:          rec.GetString("gender"),
		Address:         rec.GetString("address"),
		Phone:           rec.GetString("phone"),
		Email:           rec.GetString("email"),
		Origin:          rec.GetString("origin"),
		Destination:     rec.GetString("destination"),
		HouseholdCharge: rec.GetFloat("household_charge"),
		HouseholdVolume: rec.GetString("household_volume"),
		CarCharge:       rec.GetFloat("car_charge"),
		Services:        services,
		Taxes:           taxes,
		TotalAmount:     rec.GetFloat("total_amount"),
	}, nil
}

// BuildQuotationData loads a quotation record by id into the typed model
// used by the composer and exporters.
func BuildQuotationData(app *pocketbase.PocketBase, quotationID string) (*Quotation, error) {
	rec, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		return nil, fmt.Errorf("quotation not found: %w", err)
	}
	return QuotationFromRecord(rec)
}
