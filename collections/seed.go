package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Seed inserts a sample quotation when the collection is empty, so a fresh
// install has something to render in the admin panel. Safe to call on every
// startup.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return fmt.Errorf("seed: could not find quotations collection: %w", err)
	}

	existing, err := app.FindRecordsByFilter(col, "id != ''", "", 1, 0, nil)
	if err == nil && len(existing) > 0 {
		return nil
	}

	record := core.NewRecord(col)
	record.Set("quotation_number", "RLX-2026-001")
	record.Set("quotation_date", "2026-08-20")
	record.Set("customer_name", "Ananth Krishnan")
	record.Set("gender", "male")
	record.Set("address", "Flat 7B, Sunrise Apartments\nIndiranagar, Bangalore 560038")
	record.Set("phone", "9876543210")
	record.Set("email", "ananth.k@example.com")
	record.Set("origin", "Bangalore")
	record.Set("destination", "Pune")
	record.Set("household_charge", 40000)
	record.Set("household_volume", "2 BHK (approx. 450 cft)")
	record.Set("car_charge", 8000)
	record.Set("services", `{"packing":5000,"unpacking":3000,"storage":0}`)
	record.Set("taxes", `{"fov":{"percentage":2,"amount":1120},"surcharge":{"percentage":0,"amount":0},"gst":{"percentage":18,"amount":10080}}`)
	record.Set("total_amount", 67200)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("seed: could not save sample quotation: %w", err)
	}

	log.Printf("seed: created sample quotation %s", record.GetString("quotation_number"))
	return nil
}
