package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"reloxmovers/services"
)

// HandleQuotationExportPDF generates and downloads the quotation PDF.
// The file is named Quotation-<quotationNumber>.pdf. On any composition
// or rendering failure nothing is written to the response body, so a
// partial file can never reach the client.
func HandleQuotationExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return apiError(e, http.StatusBadRequest, "Missing quotation ID")
		}

		q, err := services.BuildQuotationData(app, id)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return apiError(e, http.StatusNotFound, "Quotation not found")
		}

		doc, err := services.Compose(q)
		if err != nil {
			log.Printf("export_pdf: compose %s: %v", q.QuotationNumber, err)
			return apiError(e, http.StatusInternalServerError, "Failed to compose quotation")
		}

		pdfBytes, err := services.GenerateQuotationPDF(doc)
		if err != nil {
			log.Printf("export_pdf: generate %s: %v", q.QuotationNumber, err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := fmt.Sprintf("Quotation-%s.pdf", sanitizeFilename(q.QuotationNumber))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuotationRegisterExcel downloads the full quotation register as
// an Excel workbook.
func HandleQuotationRegisterExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rows, err := services.BuildQuotationRegister(app)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to build quotation register")
		}

		xlsxBytes, err := services.GenerateQuotationRegisterExcel(rows)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Quotations_%d.xlsx", time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
