package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// MigrateQuotationDates backfills quotation_date from the created autodate
// for records imported from the legacy panel, which stored only a creation
// timestamp. Safe to call on every startup -- returns early if nothing to
// migrate.
func MigrateQuotationDates(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		return fmt.Errorf("migrate: could not find quotations collection: %w", err)
	}

	missing, err := app.FindRecordsByFilter(
		col,
		"quotation_date = ''",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query quotations without a date: %w", err)
	}

	if len(missing) == 0 {
		return nil
	}

	log.Printf("migrate: found %d quotation(s) without a date -- backfilling from created...\n", len(missing))

	for _, rec := range missing {
		created := rec.GetDateTime("created")
		if created.IsZero() {
			log.Printf("migrate: quotation %s has no created timestamp, skipping\n", rec.Id)
			continue
		}

		rec.Set("quotation_date", created.Time().Format("2006-01-02"))
		if err := app.Save(rec); err != nil {
			log.Printf("migrate: failed to backfill quotation %s: %v\n", rec.Id, err)
			continue
		}
	}

	log.Println("migrate: quotation date backfill complete.")
	return nil
}
