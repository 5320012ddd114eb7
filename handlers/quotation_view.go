package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationView returns a single quotation by id.
func HandleQuotationView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing quotation ID")
		}

		rec, err := app.FindRecordById("quotations", id)
		if err != nil {
			return apiError(e, http.StatusNotFound, "Quotation not found")
		}

		item, err := quotationToJSON(rec)
		if err != nil {
			log.Printf("quotation_view: malformed record %s: %v", rec.Id, err)
			return apiError(e, http.StatusInternalServerError, "Could not load quotation")
		}

		return e.JSON(http.StatusOK, item)
	}
}
