package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationList returns all quotations, newest first.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotations", "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("quotation_list: could not query quotations: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load quotations")
		}

		items := make([]quotationJSON, 0, len(records))
		for _, rec := range records {
			item, err := quotationToJSON(rec)
			if err != nil {
				log.Printf("quotation_list: skipping malformed record %s: %v", rec.Id, err)
				continue
			}
			items = append(items, item)
		}

		return e.JSON(http.StatusOK, map[string]any{"quotations": items})
	}
}
