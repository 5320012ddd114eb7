package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"reloxmovers/services"
)

// HandleQuotationCreate creates a quotation from a JSON body. A missing
// quotation number is auto-assigned from the RLX sequence; a duplicate
// number is a conflict, never silently renumbered.
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var input quotationInput
		if err := json.NewDecoder(e.Request.Body).Decode(&input); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		q, err := input.toQuotation()
		if err != nil {
			return apiError(e, http.StatusBadRequest, err.Error())
		}

		if q.QuotationNumber == "" {
			number, err := services.GenerateQuotationNumber(app, time.Now())
			if err != nil {
				log.Printf("quotation_create: could not generate number: %v", err)
				return apiError(e, http.StatusInternalServerError, "Could not generate quotation number")
			}
			q.QuotationNumber = number
		}

		if fields := q.FieldErrors(); len(fields) > 0 {
			return apiFieldErrors(e, fields)
		}

		if findByNumber(app, q.QuotationNumber) != nil {
			return apiError(e, http.StatusConflict, "Quotation number already exists")
		}

		if diff, diverged := services.CheckTotalDivergence(q); diverged {
			log.Printf("quotation_create: %s stored total diverges from subtotal+taxes by %.2f", q.QuotationNumber, diff)
		}

		col, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			log.Printf("quotation_create: could not find quotations collection: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec := core.NewRecord(col)
		applyQuotation(rec, q)

		if err := app.Save(rec); err != nil {
			log.Printf("quotation_create: could not save quotation: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		item, err := quotationToJSON(rec)
		if err != nil {
			log.Printf("quotation_create: could not serialize %s: %v", rec.Id, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusCreated, item)
	}
}
