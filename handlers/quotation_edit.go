package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"reloxmovers/services"
)

// HandleQuotationUpdate replaces a quotation's content. The record id is
// the stable identity; the quotation number may be edited but must stay
// unique.
func HandleQuotationUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing quotation ID")
		}

		rec, err := app.FindRecordById("quotations", id)
		if err != nil {
			return apiError(e, http.StatusNotFound, "Quotation not found")
		}

		var input quotationInput
		if err := json.NewDecoder(e.Request.Body).Decode(&input); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		q, err := input.toQuotation()
		if err != nil {
			return apiError(e, http.StatusBadRequest, err.Error())
		}

		if fields := q.FieldErrors(); len(fields) > 0 {
			return apiFieldErrors(e, fields)
		}

		if existing := findByNumber(app, q.QuotationNumber); existing != nil && existing.Id != rec.Id {
			return apiError(e, http.StatusConflict, "Quotation number already exists")
		}

		if diff, diverged := services.CheckTotalDivergence(q); diverged {
			log.Printf("quotation_edit: %s stored total diverges from subtotal+taxes by %.2f", q.QuotationNumber, diff)
		}

		applyQuotation(rec, q)

		if err := app.Save(rec); err != nil {
			log.Printf("quotation_edit: could not save quotation %s: %v", rec.Id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		item, err := quotationToJSON(rec)
		if err != nil {
			log.Printf("quotation_edit: could not serialize %s: %v", rec.Id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, item)
	}
}
