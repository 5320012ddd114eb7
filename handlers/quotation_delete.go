package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuotationDelete removes a quotation.
func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing quotation ID")
		}

		rec, err := app.FindRecordById("quotations", id)
		if err != nil {
			return apiError(e, http.StatusNotFound, "Quotation not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("quotation_delete: could not delete %s: %v", rec.Id, err)
			return apiError(e, http.StatusInternalServerError, "Could not delete quotation")
		}

		return e.NoContent(http.StatusNoContent)
	}
}
